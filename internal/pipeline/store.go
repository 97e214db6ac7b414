package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is a stored conversion result.
type Entry struct {
	ID        string
	Filename  string
	Result    *Result
	CreatedAt time.Time
}

// Store is a thread-safe in-memory result registry with TTL eviction.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	ttl     time.Duration

	cleanupEvery time.Duration
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	every := 5 * time.Minute
	if ttl < every {
		every = ttl
	}
	return &Store{
		entries:      make(map[string]*Entry),
		ttl:          ttl,
		cleanupEvery: every,
	}
}

// Put stores res under a new ID and returns the entry.
func (s *Store) Put(filename string, res *Result) *Entry {
	e := &Entry{
		ID:        uuid.NewString(),
		Filename:  filename,
		Result:    res,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
	return e
}

func (s *Store) Get(id string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[id]
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes expired entries.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, e := range s.entries {
		if now.Sub(e.CreatedAt) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// Start runs Cleanup periodically until ctx is done or Stop is called.
func (s *Store) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cleanupEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}

// Stop ends the cleanup loop and waits for it to exit.
func (s *Store) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
