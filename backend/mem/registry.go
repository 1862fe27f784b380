package mem

import (
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/vfskit/vfs"
)

// entry is one namespace entry: a regular file backed by a store, or a
// directory when store is nil.
type entry struct {
	name  string
	store *store
}

func (e entry) isDirectory() bool { return e.store == nil }

func lessEntry(a, b entry) bool { return a.name < b.name }

// registry is the namespace of one in-memory filesystem: a sorted mapping from
// canonical name to entry, guarded by a single mutex. Entries of a directory
// are contiguous in sorted order under the directory's name prefix, which the
// child scan relies on. No registry operation performs byte-level I/O while
// holding the lock.
type registry struct {
	mu   sync.Mutex
	tree *btree.BTreeG[entry]
}

func newRegistry() *registry {
	return &registry{tree: btree.NewG(16, lessEntry)}
}

// exists reports whether name has an entry.
func (r *registry) exists(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree.Has(entry{name: name})
}

// lookup returns the entry for name, if any.
func (r *registry) lookup(name string) (entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree.Get(entry{name: name})
}

// createFile inserts an empty store under name. It returns false, leaving the
// namespace untouched, if any entry already exists. The existence check and the
// insert share one critical section so concurrent creates of the same name
// cannot both succeed.
func (r *registry) createFile(name string, compress bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tree.Has(entry{name: name}) {
		return false
	}
	r.tree.ReplaceOrInsert(entry{name: name, store: newStore(name, compress)})
	return true
}

// createDirectory inserts a directory entry under name, failing with
// ErrCreateConflict if any entry already exists.
func (r *registry) createDirectory(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tree.Has(entry{name: name}) {
		return vfs.ErrCreateConflict
	}
	r.tree.ReplaceOrInsert(entry{name: name})
	return nil
}

// store returns the store for name, lazily creating it if no entry exists.
// Directories have no store; asking for one fails with ErrIsADirectory.
func (r *registry) store(name string, compress bool) (*store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.tree.Get(entry{name: name})
	if ok {
		if e.isDirectory() {
			return nil, vfs.ErrIsADirectory
		}
		return e.store, nil
	}
	s := newStore(name, compress)
	r.tree.ReplaceOrInsert(entry{name: name, store: s})
	return s, nil
}

// remove deletes the entry for name. A removed file's store is truncated to
// zero length rather than discarded, so channels still holding it observe an
// empty file instead of a dangling one.
func (r *registry) remove(name string) {
	var s *store

	r.mu.Lock()
	if e, ok := r.tree.Delete(entry{name: name}); ok && !e.isDirectory() {
		s = e.store
	}
	r.mu.Unlock()

	// truncate outside the namespace lock; the store has its own
	if s != nil {
		_ = s.Truncate(0)
	}
}

// rename moves the entry from name to newName as one atomic step: the store's
// recorded name is updated, the old key removed, and the new key inserted under
// one critical section, so no observer sees both keys present or both absent.
// When atomicReplace is false, an existing entry at a different newName fails
// the rename with ErrRenameConflict and the namespace is left exactly as
// before. The source is lazily created if absent; renaming a directory is not
// supported.
func (r *registry) rename(name, newName string, atomicReplace, compress bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !atomicReplace && newName != name && r.tree.Has(entry{name: newName}) {
		return vfs.ErrRenameConflict
	}

	e, ok := r.tree.Get(entry{name: name})
	if !ok {
		e = entry{name: name, store: newStore(name, compress)}
	} else if e.isDirectory() {
		return vfs.ErrIsADirectory
	}

	e.store.setName(newName)
	r.tree.Delete(entry{name: name})
	r.tree.ReplaceOrInsert(entry{name: newName, store: e.store})
	return nil
}

// children returns the names of the depth-one children of the directory name,
// in sorted order. It scans the sorted key space from name upward and stops at
// the first key outside the name prefix; children of a directory are contiguous
// under its prefix in sorted order, so the early stop loses none.
func (r *registry) children(name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []string
	r.tree.AscendGreaterOrEqual(entry{name: name}, func(e entry) bool {
		if !strings.HasPrefix(e.name, name) {
			return false
		}
		if e.name != name && !strings.Contains(e.name[min(len(name)+1, len(e.name)):], "/") {
			list = append(list, e.name)
		}
		return true
	})
	return list
}
