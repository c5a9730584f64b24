package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricesplash/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Latest(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Error(1)
}

const snapshotJSON = `{"BTC":{"USD":65000,"EUR":60000},"ETH":{"USD":3500,"EUR":3200},"SOL":{"USD":150,"EUR":140},"SUI":{"USD":3.5,"EUR":3.2},"timestamp":"2025-01-02T15:04:05.000Z"}`

func TestHandler_GetPrices_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewPriceHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/prices", nil)
	rr := httptest.NewRecorder()

	mockService.On("Latest", mock.Anything).Return([]byte(snapshotJSON), nil).Once()

	h.GetPrices(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Equal(t, snapshotJSON, rr.Body.String())
	mockService.AssertExpectations(t)
}

func TestHandler_GetPrices_PassesBytesThroughUnvalidated(t *testing.T) {
	mockService := new(MockService)
	h := NewPriceHandler(mockService)

	// Whatever is stored is returned as-is, even if it isn't a snapshot.
	mockService.On("Latest", mock.Anything).Return([]byte(`{"odd": true }`), nil).Once()

	rr := httptest.NewRecorder()
	h.GetPrices(rr, httptest.NewRequest(http.MethodGet, "/prices", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, `{"odd": true }`, rr.Body.String())
}

func TestHandler_GetPrices_NoData(t *testing.T) {
	mockService := new(MockService)
	h := NewPriceHandler(mockService)

	mockService.On("Latest", mock.Anything).Return(nil, domain.ErrKeyNotFound).Once()

	rr := httptest.NewRecorder()
	h.GetPrices(rr, httptest.NewRequest(http.MethodGet, "/prices", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	require.Equal(t, "No data available", rr.Body.String())
	mockService.AssertExpectations(t)
}

func TestHandler_GetPrices_StoreErrorIsNotLeaked(t *testing.T) {
	mockService := new(MockService)
	h := NewPriceHandler(mockService)

	mockService.On("Latest", mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.1:6379: connection refused")).Once()

	rr := httptest.NewRecorder()
	h.GetPrices(rr, httptest.NewRequest(http.MethodGet, "/prices", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "No data available", rr.Body.String())
	require.NotContains(t, rr.Body.String(), "connection refused")
}

func TestHandler_NotFound(t *testing.T) {
	h := NewPriceHandler(new(MockService))

	for _, target := range []string{"/", "/price", "/prices/extra", "/healthz"} {
		rr := httptest.NewRecorder()
		h.NotFound(rr, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusNotFound, rr.Code, target)
		require.Equal(t, "Not Found", rr.Body.String(), target)
	}
}
