package syncs

import (
	"path/filepath"
	"sync"
)

// PathLocker provides per-file mutual exclusion.
// See [PathLock] for an implementation.
type PathLocker interface {
	Lock(path string) (unlock func())
}

// PathLock serializes access to the same file while letting different files
// proceed concurrently. Paths are resolved through symlinks first, so two
// names for one file share a lock. The zero value is ready to use.
type PathLock struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

// NewPathLock creates a new [PathLock].
func NewPathLock() *PathLock {
	return &PathLock{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for path, blocking while another caller holds it.
// The returned function releases it.
func (pl *PathLock) Lock(path string) func() {
	l := pl.get(Canonical(path))
	l.Lock()

	return l.Unlock
}

func (pl *PathLock) get(key string) *sync.Mutex {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.locks == nil {
		pl.locks = make(map[string]*sync.Mutex)
	}

	l, ok := pl.locks[key]
	if !ok {
		l = &sync.Mutex{}
		pl.locks[key] = l
	}

	return l
}

// Canonical returns the absolute, symlink-free form of path. When the path
// cannot be resolved it falls back to the cleaned input.
func Canonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return filepath.Clean(path)
}
