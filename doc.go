/*
Package vfs provides a pluggable, scheme-addressed virtual filesystem layer: callers
address files through scheme-qualified names ("memFS:/data/log", "file:/tmp/out")
without caring whether the bytes live in memory, on disk, or behind some other
backend.

The package defines the capability contracts every backend implements:

  - FileSystem resolves names of its scheme into Paths.
  - Path is a handle to one scheme-qualified name and exposes the namespace
    operations (Exists, CreateFile, Delete, MoveTo, NewDirectoryStream, ...).
  - Channel is an open, seekable byte channel onto a regular file.
  - OffsetIO is the minimal offset-addressed primitive a backend must supply;
    PositionalChannel turns any OffsetIO into a Channel with POSIX-like
    cursor semantics.

Backends register themselves by scheme in the backend package; the in-memory
backend lives in backend/mem, the disk backend in backend/os. vfssimple offers
one-line construction from a scheme-qualified name:

	p, err := vfssimple.NewPath("memFS:/scratch/data.bin")
	if err != nil {
		return err
	}
	ch, err := p.Open(vfs.ReadWrite)
	if err != nil {
		return err
	}
	defer ch.Close()
	_, err = ch.Write([]byte("hello"))

Backends differ in durability only: the in-memory backend is volatile by
design and loses all content on process exit.
*/
package vfs
