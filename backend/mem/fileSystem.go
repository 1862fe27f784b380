package mem

import (
	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/backend"
	"github.com/vfskit/vfs/utils"
)

// Scheme defines the filesystem type.
const Scheme = "memFS"

// CompressedScheme is the scheme of the variant holding file blocks compressed
// to save memory.
const CompressedScheme = "memLZ"

const name = "In-Memory Filesystem"
const compressedName = "In-Memory Filesystem (compressed)"

// FileSystem implements vfs.FileSystem for an in-memory filesystem. Each
// FileSystem owns its own registry, so independently constructed instances
// share no state; the instances registered on load under Scheme and
// CompressedScheme act as the process-wide namespaces.
type FileSystem struct {
	scheme   string
	compress bool
	registry *registry
}

// NewFileSystem initializes an in-memory filesystem with an empty registry.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		scheme:   Scheme,
		registry: newRegistry(),
	}
}

// NewCompressedFileSystem initializes an in-memory filesystem that keeps file
// blocks transparently compressed.
func NewCompressedFileSystem() *FileSystem {
	return &FileSystem{
		scheme:   CompressedScheme,
		compress: true,
		registry: newRegistry(),
	}
}

// NewPath returns the mem implementation of vfs.Path for name, in canonical
// form: backslashes become '/', the scheme prefix is added if missing, and
// exactly one '/' follows the scheme separator.
func (fs *FileSystem) NewPath(name string) (vfs.Path, error) {
	if scheme, _ := utils.SplitScheme(name); scheme == "" {
		name = fs.scheme + ":" + name
	}
	return &Path{
		fileSystem: fs,
		name:       utils.CanonicalizeSchemePath(name),
	}, nil
}

// Name returns "In-Memory Filesystem"
func (fs *FileSystem) Name() string {
	if fs.compress {
		return compressedName
	}
	return name
}

// Scheme returns "memFS" as the initial part of the path ie: memFS:/some/file.txt
func (fs *FileSystem) Scheme() string {
	return fs.scheme
}

func init() {
	backend.Register(Scheme, NewFileSystem())
	backend.Register(CompressedScheme, NewCompressedFileSystem())
}
