package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker блокировки в рамках одного процесса
type MemoryLocker struct {
	mu   sync.Mutex
	now  func() time.Time
	held map[string]heldLock
	seq  uint64
}

type heldLock struct {
	id        uint64
	expiresAt time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		now:  time.Now,
		held: make(map[string]heldLock),
	}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.held[key]; ok && l.now().Before(h.expiresAt) {
		return nil, ErrLocked
	}

	l.seq++
	id := l.seq
	l.held[key] = heldLock{id: id, expiresAt: l.now().Add(ttl)}

	release := func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if h, ok := l.held[key]; !ok || h.id != id {
			return ErrNotHeld
		}
		delete(l.held, key)
		return nil
	}
	return release, nil
}
