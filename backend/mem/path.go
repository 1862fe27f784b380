package mem

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfskit/vfs"
)

// Path implements vfs.Path for the in-memory filesystem. A Path is a handle to
// one canonical name; all state lives in the filesystem's registry.
type Path struct {
	fileSystem *FileSystem
	name       string
}

// String returns the canonical scheme-qualified name, ie: memFS:/some/file.txt
func (p *Path) String() string {
	return p.name
}

// FileSystem returns the underlying vfs.FileSystem struct for the Path.
func (p *Path) FileSystem() vfs.FileSystem {
	return p.fileSystem
}

// Exists returns whether an entry exists for the path. The scheme root always
// exists.
func (p *Path) Exists() (bool, error) {
	if p.isRoot() {
		return true, nil
	}
	return p.fileSystem.registry.exists(p.name), nil
}

// CreateFile creates an empty file at the path, returning false without
// altering anything if an entry already exists.
func (p *Path) CreateFile() (bool, error) {
	return p.fileSystem.registry.createFile(p.name, p.fileSystem.compress), nil
}

// CreateDirectory creates a directory at the path. It fails with
// ErrCreateConflict if any entry already exists under the name.
func (p *Path) CreateDirectory() error {
	if err := p.fileSystem.registry.createDirectory(p.name); err != nil {
		return fmt.Errorf("create directory %s: %w", p.name, err)
	}
	return nil
}

// Delete removes the entry for the path; deleting the scheme root is a no-op.
// A deleted file's content is truncated to zero length, so channels already
// open on it observe an empty file rather than a dangling one.
func (p *Path) Delete() error {
	if p.isRoot() {
		return nil
	}
	p.fileSystem.registry.remove(p.name)
	return nil
}

// MoveTo atomically renames the path to target. With atomicReplace false, an
// existing entry at a different target fails the rename with ErrRenameConflict
// and leaves both names exactly as before.
func (p *Path) MoveTo(target vfs.Path, atomicReplace bool) error {
	t, ok := target.(*Path)
	if !ok || t.fileSystem.registry != p.fileSystem.registry {
		return vfs.ErrCrossScheme
	}
	if err := p.fileSystem.registry.rename(p.name, t.name, atomicReplace, p.fileSystem.compress); err != nil {
		return fmt.Errorf("rename %s to %s: %w", p.name, t.name, err)
	}
	return nil
}

// NewDirectoryStream returns the immediate children of the directory, sorted by
// name. Grandchildren are excluded. Listing a regular file fails with
// ErrNotADirectory; listing a name with no entry yields an empty stream.
func (p *Path) NewDirectoryStream() ([]vfs.Path, error) {
	if e, ok := p.fileSystem.registry.lookup(p.name); ok && !e.isDirectory() {
		return nil, fmt.Errorf("%s: %w", p.name, vfs.ErrNotADirectory)
	}
	names := p.fileSystem.registry.children(p.name)
	list := make([]vfs.Path, 0, len(names))
	for _, n := range names {
		list = append(list, &Path{fileSystem: p.fileSystem, name: n})
	}
	return list, nil
}

// Open opens a positional channel onto the file, creating it lazily if absent.
// Opening a directory entry fails with ErrIsADirectory.
func (p *Path) Open(mode vfs.Mode) (vfs.Channel, error) {
	s, err := p.store()
	if err != nil {
		return nil, err
	}
	return vfs.NewPositionalChannel(s, mode), nil
}

// Size returns the current length of the file in bytes.
func (p *Path) Size() (int64, error) {
	s, err := p.store()
	if err != nil {
		return 0, err
	}
	return s.Size()
}

// LastModified returns the timestamp the file was last modified.
func (p *Path) LastModified() (time.Time, error) {
	s, err := p.store()
	if err != nil {
		return time.Time{}, err
	}
	return s.getLastModified(), nil
}

// SetReadOnly marks the file read-only and reports whether it succeeded.
func (p *Path) SetReadOnly() (bool, error) {
	s, err := p.store()
	if err != nil {
		return false, err
	}
	return s.setReadOnly(), nil
}

// CanWrite returns whether the file accepts writes.
func (p *Path) CanWrite() (bool, error) {
	s, err := p.store()
	if err != nil {
		return false, err
	}
	return s.canWrite(), nil
}

// Parent returns the parent path, or nil for names with no parent.
func (p *Path) Parent() vfs.Path {
	idx := strings.LastIndexByte(p.name, '/')
	if idx < 0 {
		return nil
	}
	return &Path{fileSystem: p.fileSystem, name: p.name[:idx]}
}

// IsDirectory returns whether the entry is a directory. The scheme root always
// is.
func (p *Path) IsDirectory() (bool, error) {
	if p.isRoot() {
		return true, nil
	}
	e, ok := p.fileSystem.registry.lookup(p.name)
	return ok && e.isDirectory(), nil
}

// IsRegularFile returns whether the entry is a regular file. The scheme root
// never is.
func (p *Path) IsRegularFile() (bool, error) {
	if p.isRoot() {
		return false, nil
	}
	e, ok := p.fileSystem.registry.lookup(p.name)
	return ok && !e.isDirectory(), nil
}

// IsAbsolute returns true; the in-memory namespace has no working directory, so
// every canonical name is absolute.
func (p *Path) IsAbsolute() bool {
	return true
}

// ToRealPath returns the path itself; the in-memory filesystem has no links to
// resolve.
func (p *Path) ToRealPath() (vfs.Path, error) {
	return p, nil
}

func (p *Path) store() (*store, error) {
	s, err := p.fileSystem.registry.store(p.name, p.fileSystem.compress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return s, nil
}

func (p *Path) isRoot() bool {
	return p.name == p.fileSystem.scheme+":"
}
