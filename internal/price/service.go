package price

import (
	"context"
	"pricesplash/internal/adapters"
	"pricesplash/internal/domain"
)

type Service struct {
	store adapters.KVStore
}

// Latest returns the stored snapshot bytes exactly as written.
func (s *Service) Latest(ctx context.Context) ([]byte, error) {
	return s.store.Get(ctx, domain.LatestPricesKey)
}

func NewService(store adapters.KVStore) *Service {
	return &Service{store: store}
}
