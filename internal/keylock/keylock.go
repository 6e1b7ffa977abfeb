package keylock

import "sync"

// KeyedLock serializes work per key while letting distinct keys proceed
// in parallel. The engine holds one for the load-mutate-commit span of
// every player action so concurrent duplicate requests cannot lose
// updates. Entries are reference counted and freed once idle.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyedLock {
	return &KeyedLock{locks: make(map[int64]*entry)}
}

// Lock blocks until the key is held and returns the matching unlock.
func (l *KeyedLock) Lock(key int64) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
