package os

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/backend"
	"github.com/vfskit/vfs/utils"
)

// Scheme defines the filesystem type.
const Scheme = "file"
const name = "os"

// FileSystem implements vfs.FileSystem for the OS filesystem.
type FileSystem struct{}

// NewPath returns the os implementation of vfs.Path for name. The "file:"
// prefix is optional; "~" expands to the user's home directory and relative
// paths resolve against the working directory, so the canonical name is always
// absolute.
func (fs *FileSystem) NewPath(name string) (vfs.Path, error) {
	if scheme, rest := utils.SplitScheme(name); scheme == Scheme {
		name = rest
	}

	expanded, err := homedir.Expand(name)
	if err != nil {
		return nil, err
	}
	native, err := filepath.Abs(filepath.FromSlash(expanded))
	if err != nil {
		return nil, err
	}

	return &Path{
		fileSystem: fs,
		name:       Scheme + ":" + filepath.ToSlash(native),
		native:     native,
	}, nil
}

// Name returns "os"
func (fs *FileSystem) Name() string {
	return name
}

// Scheme returns "file" as the initial part of the path ie: file:/some/file.txt
func (fs *FileSystem) Scheme() string {
	return Scheme
}

func init() {
	backend.Register(Scheme, &FileSystem{})
}
