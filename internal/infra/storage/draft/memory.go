package draft

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

type memoryEntry struct {
	draft     domain.Draft
	expiresAt time.Time
}

// MemoryStore черновики в памяти процесса, для запуска без Redis и тестов.
// Хранит копии, чтобы вызывающий код не менял сохраненное состояние.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, userID)
		return nil, ErrDraftNotFound
	}

	d := e.draft
	return &d, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = memoryEntry{draft: *d, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}
