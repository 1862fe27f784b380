package os

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/utils"
)

// Path implements vfs.Path for the OS filesystem.
type Path struct {
	fileSystem *FileSystem
	name       string // canonical, ie: file:/abs/path
	native     string // platform form of the same path
}

// String returns the canonical scheme-qualified name, ie: file:/some/file.txt
func (p *Path) String() string {
	return p.name
}

// FileSystem returns the underlying vfs.FileSystem struct for the Path.
func (p *Path) FileSystem() vfs.FileSystem {
	return p.fileSystem
}

// Exists returns whether the path exists on disk.
func (p *Path) Exists() (bool, error) {
	_, err := os.Stat(p.native)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, utils.WrapExistsError(err)
	}
	return true, nil
}

// CreateFile creates an empty file at the path, returning false without
// altering anything if an entry already exists.
func (p *Path) CreateFile() (bool, error) {
	f, err := os.OpenFile(p.native, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, utils.WrapCreateError(err)
	}
	return true, f.Close()
}

// CreateDirectory creates a directory at the path, failing with
// ErrCreateConflict if any entry already exists.
func (p *Path) CreateDirectory() error {
	if err := os.Mkdir(p.native, 0755); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("create directory %s: %w", p.name, vfs.ErrCreateConflict)
		}
		return utils.WrapCreateError(err)
	}
	return nil
}

// Delete removes the entry at the path. Deleting a nonexistent path is a
// no-op. The OS keeps open descriptors on a deleted file valid, matching the
// delete-while-open contract of the in-memory backend.
func (p *Path) Delete() error {
	if err := os.Remove(p.native); err != nil && !os.IsNotExist(err) {
		return utils.WrapDeleteError(err)
	}
	return nil
}

// MoveTo renames the path to target. With atomicReplace false, an existing
// entry at a different target fails with ErrRenameConflict; the check and the
// rename are not one atomic step on the OS backend, so a concurrent creator can
// still be replaced. With atomicReplace true the rename is the kernel's atomic
// rename.
func (p *Path) MoveTo(target vfs.Path, atomicReplace bool) error {
	t, ok := target.(*Path)
	if !ok {
		return vfs.ErrCrossScheme
	}
	if !atomicReplace && t.name != p.name {
		if exists, err := t.Exists(); err != nil {
			return err
		} else if exists {
			return fmt.Errorf("rename %s to %s: %w", p.name, t.name, vfs.ErrRenameConflict)
		}
	}
	if err := os.Rename(p.native, t.native); err != nil {
		return utils.WrapRenameError(err)
	}
	return nil
}

// NewDirectoryStream returns the immediate children of the directory, sorted by
// name.
func (p *Path) NewDirectoryStream() ([]vfs.Path, error) {
	if fi, err := os.Stat(p.native); err == nil && !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", p.name, vfs.ErrNotADirectory)
	}
	entries, err := os.ReadDir(p.native)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	list := make([]vfs.Path, 0, len(entries))
	for _, e := range entries {
		child, err := p.fileSystem.NewPath(filepath.Join(p.native, e.Name()))
		if err != nil {
			return nil, err
		}
		list = append(list, child)
	}
	return list, nil
}

// Open opens a positional channel onto the file. ReadWrite creates the file if
// absent; ReadOnly requires it to exist. Opening a directory fails with
// ErrIsADirectory.
func (p *Path) Open(mode vfs.Mode) (vfs.Channel, error) {
	if fi, err := os.Stat(p.native); err == nil && fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", p.name, vfs.ErrIsADirectory)
	}

	flag := os.O_RDONLY
	if mode == vfs.ReadWrite {
		flag = os.O_RDWR | os.O_CREATE
	}
	f, err := os.OpenFile(p.native, flag, 0644)
	if err != nil {
		return nil, utils.WrapOpenError(err)
	}
	return vfs.NewPositionalChannel(&fileIO{f: f}, mode), nil
}

// Size returns the current length of the file in bytes.
func (p *Path) Size() (int64, error) {
	fi, err := os.Stat(p.native)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// LastModified returns the timestamp of the file's mtime.
func (p *Path) LastModified() (time.Time, error) {
	fi, err := os.Stat(p.native)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

// SetReadOnly drops the write bits from the file's mode and reports whether it
// succeeded.
func (p *Path) SetReadOnly() (bool, error) {
	fi, err := os.Stat(p.native)
	if err != nil {
		return false, err
	}
	if err := os.Chmod(p.native, fi.Mode().Perm()&^0222); err != nil {
		return false, err
	}
	return true, nil
}

// CanWrite returns whether the file accepts writes.
func (p *Path) CanWrite() (bool, error) {
	fi, err := os.Stat(p.native)
	if err != nil {
		return false, err
	}
	return fi.Mode().Perm()&0200 != 0, nil
}

// Parent returns the parent path, or nil for the filesystem root.
func (p *Path) Parent() vfs.Path {
	dir := filepath.Dir(p.native)
	if dir == p.native {
		return nil
	}
	parent, err := p.fileSystem.NewPath(dir)
	if err != nil {
		return nil
	}
	return parent
}

// IsDirectory returns whether the entry is a directory.
func (p *Path) IsDirectory() (bool, error) {
	fi, err := os.Stat(p.native)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}

// IsRegularFile returns whether the entry is a regular file.
func (p *Path) IsRegularFile() (bool, error) {
	fi, err := os.Stat(p.native)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.Mode().IsRegular(), nil
}

// IsAbsolute returns true; canonical os paths are always absolute.
func (p *Path) IsAbsolute() bool {
	return true
}

// ToRealPath resolves symlinks to the file's real path.
func (p *Path) ToRealPath() (vfs.Path, error) {
	resolved, err := filepath.EvalSymlinks(p.native)
	if err != nil {
		return nil, err
	}
	return p.fileSystem.NewPath(resolved)
}

// fileIO adapts *os.File to vfs.OffsetIO so the generic positional channel can
// drive it; the native ReadAt/WriteAt calls are the blocking points here.
type fileIO struct {
	f *os.File
}

func (o *fileIO) ReadAt(p []byte, off int64) (int, error)  { return o.f.ReadAt(p, off) }
func (o *fileIO) WriteAt(p []byte, off int64) (int, error) { return o.f.WriteAt(p, off) }
func (o *fileIO) Truncate(size int64) error                { return o.f.Truncate(size) }
func (o *fileIO) Close() error                             { return o.f.Close() }

func (o *fileIO) Size() (int64, error) {
	fi, err := o.f.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
