package storage

import (
	"sync"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
)

// Memory KeyValueStore en memoria (tests y modo efímero).
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ ports.KeyValueStore = (*Memory)(nil)

// NewMemory construye un almacenamiento vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
