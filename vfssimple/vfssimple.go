package vfssimple

import (
	"fmt"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/backend"
	_ "github.com/vfskit/vfs/backend/all" // register all backends
)

// NewPath is a convenience function that instantiates a Path from a
// scheme-qualified name, dispatching on the scheme to any registered backend.
func NewPath(name string) (vfs.Path, error) {
	if name == "" {
		return nil, ErrBlankName
	}
	p, err := backend.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("unable to create vfs.Path for %q: %w", name, err)
	}
	return p, nil
}

// ErrBlankName - the name is blank
const ErrBlankName = vfs.Error("name is blank")
