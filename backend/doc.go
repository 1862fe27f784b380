/*
Package backend provides a means of allowing backend file systems to self-register on load via an init() call to
backend.Register("scheme", vfs.FileSystem).

In this way, a caller of vfs backends can load only the backends needed and begin using them:

  package main

  // import backend and each backend you intend to use
  import (
      "github.com/vfskit/vfs/backend"
      "github.com/vfskit/vfs/backend/mem"
      _ "github.com/vfskit/vfs/backend/os" // registers "file"
  )

  func main() {
      useMemFS(backend.Backend(mem.Scheme))
  }

Alternatively, backend/all registers every backend in the module:

  import _ "github.com/vfskit/vfs/backend/all"

backend.Resolve dispatches a scheme-qualified name straight to a Path of the
backend registered for its scheme.

Third-party backends only need to implement vfs.FileSystem and call
backend.Register from their init.
*/
package backend
