/*
Package mem implements the in-memory vfs backend.

Files live entirely in process memory: a filesystem keeps one sorted registry
from canonical name to entry, either a regular file backed by a block store or
a directory. The backend registers itself under two schemes, "memFS" for plain
storage and "memLZ" for transparently compressed blocks.

Usage

Rely on github.com/vfskit/vfs/backend:

  import (
      "github.com/vfskit/vfs/backend"
      "github.com/vfskit/vfs/backend/mem"
  )

  func UseFs() error {
      fs := backend.Backend(mem.Scheme)
      ...
  }

Or call directly:

  import "github.com/vfskit/vfs/backend/mem"

  func DoSomething() {
      fs := mem.NewFileSystem()
      ...
  }

Directly constructed filesystems have private registries, which tests use to
avoid sharing namespace state.

Behaviors worth knowing:

  - Content is volatile by design; process restart loses everything.
  - Deleting a file truncates its content to zero length without invalidating
    channels already open on it; they observe an empty file until closed.
  - Opening or stat-ing a name that does not exist lazily creates an empty
    file behind it.
*/
package mem
