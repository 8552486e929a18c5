// Package kv abstrae el almacen clave-valor durable donde viven las
// secuencias de scores y criticas. Lecturas y escrituras son atomicas a nivel
// de valor completo; no hay escrituras parciales.
package kv

import (
	"context"
	"sync"
)

// Store es el contrato minimo get/set del almacen durable.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]string
}

// NewMemoryStore crea un Store en memoria, util para tests y para la CLI
// cuando no hay Redis configurado.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}
