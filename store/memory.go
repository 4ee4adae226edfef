package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// memoryKV is an in-process KeyValueStore used by the test suites. It keeps
// the same JSON-text value encoding as the mongo implementation so records
// round-trip identically through both.
type memoryKV struct {
	sync.RWMutex
	data map[string]string
}

// NewMemoryKeyValueStore - return an in-memory key-value store
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKV{
		data: map[string]string{},
	}
}

func (m *memoryKV) Get(ctx context.Context, key string, value interface{}) error {
	m.RLock()
	defer m.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return ErrKeyNotFound
	}
	return json.Unmarshal([]byte(data), value)
}

func (m *memoryKV) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.Lock()
	defer m.Unlock()
	m.data[key] = string(data)
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.Lock()
	defer m.Unlock()
	delete(m.data, key)
	return nil
}

// GetByPrefix scans keys in lexical order so listings are deterministic.
func (m *memoryKV) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	m.RLock()
	defer m.RUnlock()

	keys := make([]string, 0)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	values := make([][]byte, 0, len(keys))
	for _, k := range keys {
		values = append(values, []byte(m.data[k]))
	}
	return values, nil
}

func (m *memoryKV) Ping() error {
	return nil
}

func (m *memoryKV) Close() {}
