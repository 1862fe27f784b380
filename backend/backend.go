package backend

import (
	"sort"
	"sync"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/utils"
)

var mmu sync.RWMutex
var m map[string]vfs.FileSystem

// Register a new filesystem in backend map
func Register(scheme string, v vfs.FileSystem) {
	mmu.Lock()
	m[scheme] = v
	mmu.Unlock()
}

// Unregister unregisters a filesystem from backend map
func Unregister(scheme string) {
	mmu.Lock()
	delete(m, scheme)
	mmu.Unlock()
}

// UnregisterAll unregisters all filesystems from backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]vfs.FileSystem)
	mmu.Unlock()
}

// Backend returns the backend filesystem by scheme
func Backend(scheme string) vfs.FileSystem {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[scheme]
}

// RegisteredBackends returns an array of registered backend schemes
func RegisteredBackends() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

// Resolve dispatches a scheme-qualified name to its registered backend and
// returns the backend's Path for it. A name with no scheme separator, or with a
// scheme no backend is registered for, fails with ErrMissingScheme or
// ErrNotRegistered respectively.
func Resolve(name string) (vfs.Path, error) {
	scheme, _ := utils.SplitScheme(name)
	if scheme == "" {
		return nil, ErrMissingScheme
	}
	fs := Backend(scheme)
	if fs == nil {
		return nil, ErrNotRegistered
	}
	return fs.NewPath(name)
}

const (
	// ErrMissingScheme - the name carries no scheme separator
	ErrMissingScheme = vfs.Error("unable to determine scheme from name")

	// ErrNotRegistered - no backend is registered for the name's scheme
	ErrNotRegistered = vfs.Error("no matching registered filesystem found")
)

func init() {
	m = make(map[string]vfs.FileSystem)
}
