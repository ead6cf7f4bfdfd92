package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

// MemoryStore is a simple in-memory session store with optional expiration.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	ttl   time.Duration
}

type memoryItem struct {
	value      []byte
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store. A zero ttl keeps records
// until they are deleted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		ttl:   ttl,
	}

	if ttl > 0 {
		// Cleanup goroutine removes expired items
		go store.cleanupExpired()
	}

	return store
}

// Save serializes the record and stores it under the session key.
func (ms *MemoryStore) Save(_ context.Context, sessionID string, record *entities.MeetingRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem{value: b}
	if ms.ttl > 0 {
		item.expireTime = time.Now().Add(ms.ttl)
	}
	ms.items[sessionKey(sessionID)] = item
	return nil
}

// Load retrieves and deserializes a record (false if not found or expired).
func (ms *MemoryStore) Load(_ context.Context, sessionID string) (*entities.MeetingRecord, bool, error) {
	ms.mu.RLock()
	item, exists := ms.items[sessionKey(sessionID)]
	ms.mu.RUnlock()

	if !exists {
		return nil, false, nil
	}
	if !item.expireTime.IsZero() && time.Now().After(item.expireTime) {
		return nil, false, nil
	}

	var record entities.MeetingRecord
	if err := json.Unmarshal(item.value, &record); err != nil {
		return nil, false, err
	}
	return &record, true, nil
}

// Delete removes a session entry.
func (ms *MemoryStore) Delete(_ context.Context, sessionID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, sessionKey(sessionID))
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if !item.expireTime.IsZero() && now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
