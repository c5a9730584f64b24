package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricesplash/internal/adapters/cache"
	"pricesplash/internal/adapters/httpclient"
	"pricesplash/internal/domain"
	"pricesplash/internal/price"
	pricehandler "pricesplash/internal/price/handler"

	"github.com/stretchr/testify/require"
)

func TestPricesFlow_RefreshThenServe(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "BTC": {"USD": 65000, "EUR": 60000},
            "ETH": {"USD": 3500, "EUR": 3200},
            "SOL": {"USD": 150, "EUR": 140},
            "SUI": {"USD": 3.5, "EUR": 3.2},
            "Warning": "There is no data for the symbols DOGE ."
        }`))
	}))
	t.Cleanup(upstream.Close)

	kv, err := cache.NewKVStore(1)
	require.NoError(t, err)
	t.Cleanup(kv.Close)

	client := httpclient.NewCryptoCompareClient(upstream.URL, "", 5*time.Second)
	capturedAt := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	refresher := price.NewRefresher(client, kv, func() time.Time { return capturedAt })
	router := NewPriceRouter(pricehandler.NewPriceHandler(price.NewService(kv)))

	rr := serve(router, http.MethodGet, "/prices")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "No data available", rr.Body.String())

	ctx := context.Background()
	snapshot, err := refresher.Refresh(ctx)
	require.NoError(t, err)

	stored, err := kv.Get(ctx, domain.LatestPricesKey)
	require.NoError(t, err)

	rr = serve(router, http.MethodGet, "/prices")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Equal(t, string(stored), rr.Body.String())

	var served domain.PriceSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &served))
	require.Equal(t, snapshot, served)
	require.Equal(t, "2025-01-02T15:04:05.000Z", served.Timestamp)
	require.InDelta(t, 3.2, served.SUI.EUR, 1e-9)
}
