package objectstore

import (
	"bytes"
	"context"
	"pricesplash/internal/domain"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps objects in process memory. It backs local runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]domain.Object
}

func (s *MemoryStore) List(_ context.Context, prefix string) ([]domain.ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	infos := make([]domain.ObjectInfo, 0, len(keys))
	for _, key := range keys {
		infos = append(infos, domain.ObjectInfo{Key: key})
	}
	return infos, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (domain.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return domain.Object{}, domain.ErrObjectNotFound
	}
	obj.Body = bytes.Clone(obj.Body)
	return obj, nil
}

func (s *MemoryStore) Put(_ context.Context, obj domain.Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj.Body = bytes.Clone(obj.Body)
	s.objects[obj.Key] = obj
	return nil
}

// Delete removes key if present.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]domain.Object)}
}
