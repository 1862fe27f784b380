// Package all imports all VFS implementations.
package all

import (
	_ "github.com/vfskit/vfs/backend/mem" // register memFS and memLZ backends
	_ "github.com/vfskit/vfs/backend/os"  // register file backend
)
