package services

import (
	"slices"
	"sync"
)

// accountLocks hands out one mutex per account number. Multi-account
// acquisition always happens in ascending number order.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocks) get(number string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[number]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[number] = lock
	}
	return lock
}

// acquire locks every distinct number and returns the matching release func.
func (l *accountLocks) acquire(numbers ...string) func() {
	ordered := slices.Clone(numbers)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, number := range ordered {
		lock := l.get(number)
		lock.Lock()
		held = append(held, lock)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
