package price

import (
	"context"
	"encoding/json"
	"fmt"
	"pricesplash/internal/adapters"
	"pricesplash/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

type Refresher struct {
	client    adapters.PriceClient
	store     adapters.KVStore
	validator *SymbolValidator
	now       func() time.Time
}

// Refresh fetches current quotes and replaces the cached snapshot. Any error
// leaves the previously stored snapshot untouched.
func (r *Refresher) Refresh(ctx context.Context) (domain.PriceSnapshot, error) {
	// STEP 1: fetch quotes from upstream
	quotes, err := r.client.GetPrices(ctx, r.validator.RequiredSymbols(), domain.Currencies)
	if err != nil {
		return domain.PriceSnapshot{}, fmt.Errorf("failed to fetch prices: %w", err)
	}

	// STEP 2: all required symbols must be there, otherwise nothing is written
	prices, err := r.validator.Validate(quotes)
	if err != nil {
		return domain.PriceSnapshot{}, err
	}

	// STEP 3: shape the snapshot and write it as one value
	snapshot := domain.NewPriceSnapshot(prices, r.now())
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return domain.PriceSnapshot{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err = r.store.Put(ctx, domain.LatestPricesKey, payload); err != nil {
		return domain.PriceSnapshot{}, fmt.Errorf("failed to store snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{"timestamp": snapshot.Timestamp, "key": domain.LatestPricesKey}).Info("Price snapshot updated")
	return snapshot, nil
}

// Run is the scheduled entry point.
func (r *Refresher) Run(ctx context.Context) error {
	_, err := r.Refresh(ctx)
	return err
}

func NewRefresher(client adapters.PriceClient, store adapters.KVStore, now func() time.Time) *Refresher {
	if now == nil {
		now = time.Now
	}
	return &Refresher{
		client:    client,
		store:     store,
		validator: NewValidator(domain.Symbols),
		now:       now,
	}
}
