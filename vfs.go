package vfs

import (
	"fmt"
	"io"
	"time"
)

// Mode selects how a Path is opened.
type Mode int

const (
	// ReadOnly opens a channel that rejects Write and Truncate.
	ReadOnly Mode = iota

	// ReadWrite opens a channel for both reading and writing.
	ReadWrite
)

// FileSystem represents one registered backend, identified by its uri scheme.
type FileSystem interface {
	// NewPath resolves name into a Path of this filesystem. The name may or may
	// not carry the scheme prefix; the returned Path always does, in canonical
	// form. On error, nil is returned for the path.
	NewPath(name string) (Path, error)

	// Name returns the name of the FileSystem ie: In-Memory Filesystem, os, etc...
	Name() string

	// Scheme, related to Name, is the uri scheme used by the FileSystem: memFS, file, etc...
	Scheme() string
}

// Path is a handle to one scheme-qualified name on a backend. A Path may or may
// not actually exist on the filesystem; most operations act on the namespace
// entry behind the name rather than on the handle itself.
type Path interface {
	fmt.Stringer

	// FileSystem returns the underlying vfs.FileSystem struct for the Path.
	FileSystem() FileSystem

	// Exists returns whether an entry exists for the path. The root of a scheme
	// always exists. Also returns an error, if any.
	Exists() (bool, error)

	// CreateFile creates an empty regular file at the path. It returns false,
	// without error and without altering content, if an entry already exists.
	CreateFile() (bool, error)

	// CreateDirectory creates a directory at the path. It fails with
	// ErrCreateConflict if any entry, file or directory, already exists.
	CreateDirectory() error

	// Delete removes the entry for the path. Deleting the scheme root is a
	// no-op. Open channels onto a deleted file stay valid and observe the file
	// truncated to zero length.
	Delete() error

	// MoveTo renames the path to target. When atomicReplace is false and an
	// entry already exists at a different target, it fails with
	// ErrRenameConflict; otherwise the destination is silently replaced. The
	// rename is atomic within one backend; cross-scheme moves are not
	// supported.
	MoveTo(target Path, atomicReplace bool) error

	// NewDirectoryStream returns the immediate children of the directory,
	// sorted by name. Grandchildren are not included.
	NewDirectoryStream() ([]Path, error)

	// Open opens a positional channel onto the regular file at the path,
	// creating it if absent. Opening a directory fails with ErrIsADirectory.
	Open(mode Mode) (Channel, error)

	// Size returns the current length of the file in bytes.
	Size() (int64, error)

	// LastModified returns the timestamp the file was last modified.
	LastModified() (time.Time, error)

	// SetReadOnly marks the file read-only and reports whether it succeeded.
	SetReadOnly() (bool, error)

	// CanWrite returns whether the file accepts writes.
	CanWrite() (bool, error)

	// Parent returns the parent path, or nil for the scheme root.
	Parent() Path

	// IsDirectory returns whether the entry is a directory. The scheme root is
	// always a directory.
	IsDirectory() (bool, error)

	// IsRegularFile returns whether the entry is a regular file. The scheme
	// root never is.
	IsRegularFile() (bool, error)

	// IsAbsolute returns whether the path is absolute.
	IsAbsolute() bool

	// ToRealPath resolves the path to its real, link-free form.
	ToRealPath() (Path, error)
}

// Channel is an open, seekable byte channel onto a regular file. Every method
// is safe for concurrent use by callers sharing the channel; channels opened
// separately onto the same file have independent cursors.
type Channel interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Position returns the current cursor.
	Position() (int64, error)

	// Size returns the current length of the underlying file.
	Size() (int64, error)

	// Truncate changes the length of the underlying file to size. If size is
	// below the current cursor, the cursor is pulled back to size.
	Truncate(size int64) error
}

// OffsetIO is the offset-addressed primitive a backend supplies for one file.
// ReadAt follows the io.ReaderAt contract: a read that ends at or past
// end-of-file returns io.EOF alongside the bytes read. WriteAt past the current
// length grows the file, zero-filling any gap. Implementations that also
// implement io.Closer are closed when a channel over them is closed.
type OffsetIO interface {
	io.ReaderAt
	io.WriterAt

	// Truncate shrinks or grows the file to exactly size, discarding bytes
	// beyond it or zero-filling up to it.
	Truncate(size int64) error

	// Size returns the current length in bytes.
	Size() (int64, error)
}
