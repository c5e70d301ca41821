package cache

import (
	"encoding/json"
	"log"
	"time"
)

type entry struct {
	Timestamp int64           `json:"timestamp"` // Unix milliseconds
	Data      json.RawMessage `json:"data"`
}

// Manager caches one value under one key for a fixed duration.
type Manager struct {
	store Store
	key   string
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store Store, key string, ttl time.Duration) *Manager {
	return &Manager{store: store, key: key, ttl: ttl, now: time.Now}
}

// Get decodes the cached value into v. It reports false when nothing
// usable is cached; an expired entry is removed.
func (m *Manager) Get(v any) bool {
	raw, err := m.store.Get(m.key)
	if err != nil {
		return false
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return false
	}
	if m.now().Sub(time.UnixMilli(e.Timestamp)) > m.ttl {
		m.Clear()
		return false
	}
	return json.Unmarshal(e.Data, v) == nil
}

// Set stores v stamped with the current time. Failures are logged and
// otherwise ignored; the cache is an optimisation.
func (m *Manager) Set(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache %s: failed to encode value: %v", m.key, err)
		return
	}
	raw, err := json.Marshal(entry{Timestamp: m.now().UnixMilli(), Data: data})
	if err != nil {
		log.Printf("cache %s: failed to encode entry: %v", m.key, err)
		return
	}
	if err := m.store.Put(m.key, raw); err != nil {
		log.Printf("cache %s: failed to save: %v", m.key, err)
	}
}

func (m *Manager) Clear() {
	if err := m.store.Delete(m.key); err != nil {
		log.Printf("cache %s: failed to clear: %v", m.key, err)
	}
}
