package storage

import (
	"context"
	"errors"
	"sync"
	"time"
)

const memorySweepEvery = 256

type memoryEntry struct {
	value    []byte
	deadline int64
}

// MemoryBackend is a single-process [Backend] backed by a mutex-guarded map
// of digest to (value, deadline). Operations on the same key are linearized
// by the lock. Expiry is enforced lazily: Get and Delete compare the stored
// deadline against the clock, and a periodic inline sweep reclaims whatever
// lazy checks have not touched.
//
// A MemoryBackend is never shared across processes. Two engines holding
// separate instances issue into disjoint worlds: tokens minted through one
// are invisible to the other. Deployments that need shared visibility use
// [RedisBackend].
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	writes  uint64
	now     func() time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryBackend) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	entry := memoryEntry{
		value:    append([]byte(nil), value...),
		deadline: m.now().Add(ttl).UnixNano(),
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.writes++
	if m.writes%memorySweepEvery == 0 {
		m.sweepLocked(m.now().UnixNano())
	}
	m.mu.Unlock()

	return nil
}

func (m *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	nowNano := m.now().UnixNano()

	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && entry.deadline <= nowNano {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), entry.value...), nil
}

func (m *MemoryBackend) Delete(ctx context.Context, key string) (bool, error) {
	nowNano := m.now().UnixNano()

	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok {
		delete(m.entries, key)
		if entry.deadline <= nowNano {
			// Removed, but it was already dead: report absent so a racing
			// refresh cannot win with an expired token.
			ok = false
		}
	}
	m.mu.Unlock()

	return ok, nil
}

func (m *MemoryBackend) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}

// Len reports the number of entries currently held, expired or not.
func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryBackend) sweepLocked(nowNano int64) {
	for key, entry := range m.entries {
		if entry.deadline <= nowNano {
			delete(m.entries, key)
		}
	}
}
