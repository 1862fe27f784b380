/*
Package vfssimple provides a basic way of resolving scheme-qualified names
against every backend in the module. Importing it registers all backends; if
you need to reduce the backend requirements (and app memory footprint), import
the backend packages you want directly and use backend.Resolve instead.

	p, err := vfssimple.NewPath("memFS:/scratch/data.bin")
	q, err := vfssimple.NewPath("file:/tmp/data.bin")
*/
package vfssimple
