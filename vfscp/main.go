// vfscp copies a file from one place to another, even between supported
// backends:
//
//	vfscp file:/etc/hosts memFS:/scratch/hosts
//	vfscp --overwrite memFS:/scratch/hosts file:/tmp/hosts
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/vfssimple"
)

func main() {
	overwrite := pflag.BoolP("overwrite", "f", false, "overwrite the target if it exists")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vfscp [flags] <source> <target>\n\nBoth arguments are scheme-qualified names, ie file:/tmp/in.txt or memFS:/out.txt\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := copyPath(pflag.Arg(0), pflag.Arg(1), *overwrite); err != nil {
		color.Red("vfscp: %v", err)
		os.Exit(1)
	}
	color.Green("copied %s to %s", pflag.Arg(0), pflag.Arg(1))
}

func copyPath(source, target string, overwrite bool) error {
	src, err := vfssimple.NewPath(source)
	if err != nil {
		return err
	}
	dst, err := vfssimple.NewPath(target)
	if err != nil {
		return err
	}

	if exists, err := src.Exists(); err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("%s: %w", source, vfs.ErrNotExist)
	}

	if !overwrite {
		if exists, err := dst.Exists(); err != nil {
			return err
		} else if exists {
			return fmt.Errorf("%s already exists (use --overwrite)", target)
		}
	}

	in, err := src.Open(vfs.ReadOnly)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := dst.Open(vfs.ReadWrite)
	if err != nil {
		return err
	}
	defer out.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return err
	}
	// drop any stale tail from a longer previous version of the target
	return out.Truncate(n)
}
