package adapters

import (
	"context"
	"pricesplash/internal/domain"
)

type PriceClient interface {
	GetPrices(ctx context.Context, symbols []string, currencies []string) (map[string]*domain.CryptoPrice, error)
}

// KVStore returns domain.ErrKeyNotFound from Get when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// ObjectStore returns domain.ErrObjectNotFound from Get when the key is absent.
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]domain.ObjectInfo, error)
	Get(ctx context.Context, key string) (domain.Object, error)
	Put(ctx context.Context, obj domain.Object) error
}
