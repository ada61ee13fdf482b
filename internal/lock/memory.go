package lock

import (
	"context"
	"sync"
)

// MemoryLocker is an in-process DateLocker for tests and single-instance
// deployments without redis.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemoryLocker) Lock(ctx context.Context, date string) (Unlocker, error) {
	l.mu.Lock()
	m, ok := l.locks[date]
	if !ok {
		m = &sync.Mutex{}
		l.locks[date] = m
	}
	l.mu.Unlock()

	m.Lock()
	return &memoryUnlocker{m: m}, nil
}

type memoryUnlocker struct {
	m *sync.Mutex
}

func (u *memoryUnlocker) Unlock(context.Context) {
	u.m.Unlock()
}
