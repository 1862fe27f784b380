package vfs

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNotExist - File does not exist
	ErrNotExist = Error("file does not exist")

	// ErrSeekInvalidOffset - Offset is invalid. Must be greater than or equal to 0
	ErrSeekInvalidOffset = Error("seek: invalid offset")

	// ErrSeekInvalidWhence - Whence is invalid.  Must be one of the following: 0 (io.SeekStart), 1 (io.SeekCurrent), or 2 (io.SeekEnd)
	ErrSeekInvalidWhence = Error("seek: invalid whence")

	// ErrNegativeOffset - A read, write, or truncate was attempted at a negative offset or size
	ErrNegativeOffset = Error("negative offset")

	// ErrReadOnly - A write or truncate was attempted on a read-only file or on a channel opened read-only
	ErrReadOnly = Error("file is read-only")

	// ErrCreateConflict - CreateDirectory was called on a name that already exists as a file or directory
	ErrCreateConflict = Error("create: name already exists")

	// ErrRenameConflict - A non-atomic rename found an existing entry at the destination
	ErrRenameConflict = Error("rename: destination already exists")

	// ErrNotADirectory - A directory operation was attempted on a regular file
	ErrNotADirectory = Error("not a directory")

	// ErrIsADirectory - A byte channel was opened on a directory entry
	ErrIsADirectory = Error("is a directory")

	// ErrCrossScheme - MoveTo was given a target belonging to a different backend
	ErrCrossScheme = Error("rename: cross-scheme move not supported")

	// ErrChannelClosed - An operation was attempted on a closed channel
	ErrChannelClosed = Error("channel is closed")
)
