/*
Package os implements the disk vfs backend under the "file" scheme.

It maps the Path contract onto native OS calls and reuses the generic
vfs.PositionalChannel over the file descriptor's ReadAt/WriteAt/Truncate, so
seek and cursor semantics are identical to the in-memory backend's. Unlike the
in-memory backend, content survives process restart and ReadOnly opens require
the file to exist.
*/
package os
