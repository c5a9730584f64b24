package cache

import (
	"bytes"
	"context"
	"fmt"
	"pricesplash/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// KVStore is an in-process key-value store. Values do not survive a restart.
type KVStore struct {
	cache *ristretto.Cache
}

func NewKVStore(maxItems int64) (*KVStore, error) {
	if maxItems <= 0 {
		maxItems = 64
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// Cost is an item count; internal bookkeeping must not count against it.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create kv cache failed: %w", err)
	}
	return &KVStore{cache: c}, nil
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	value, ok := v.([]byte)
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return bytes.Clone(value), nil
}

func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	if !s.cache.Set(key, bytes.Clone(value), 1) {
		return fmt.Errorf("kv cache rejected key %q", key)
	}
	// Set is buffered; wait so the value is visible to the next Get.
	s.cache.Wait()

	// The admission policy may still drop the item after Wait.
	if _, ok := s.cache.Get(key); !ok {
		return fmt.Errorf("kv cache dropped key %q", key)
	}
	return nil
}

func (s *KVStore) Close() { s.cache.Close() }
