package price

import (
	"testing"

	"pricesplash/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSymbolValidator_Validate_MissingSymbols(t *testing.T) {
	validator := NewValidator(domain.Symbols)

	_, err := validator.Validate(map[string]*domain.CryptoPrice{
		"BTC": {USD: 1, EUR: 1},
		"ETH": nil,
		"SOL": {USD: 1, EUR: 1},
	})
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
	require.Contains(t, err.Error(), "ETH,SUI")
}

func TestSymbolValidator_Validate_EmptyResponse(t *testing.T) {
	validator := NewValidator(domain.Symbols)

	_, err := validator.Validate(nil)
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
	require.Contains(t, err.Error(), "BTC,ETH,SOL,SUI")
}

func TestSymbolValidator_Validate_DropsExtraSymbols(t *testing.T) {
	validator := NewValidator([]string{"BTC"})

	prices, err := validator.Validate(map[string]*domain.CryptoPrice{
		"BTC":  {USD: 65000, EUR: 60000},
		"DOGE": {USD: 0.1, EUR: 0.09},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]domain.CryptoPrice{"BTC": {USD: 65000, EUR: 60000}}, prices)
}

func TestNewValidator_ClonesSymbols(t *testing.T) {
	source := []string{"BTC", "ETH"}
	validator := NewValidator(source)

	source[0] = "XRP"
	require.Equal(t, []string{"BTC", "ETH"}, validator.RequiredSymbols())

	got := validator.RequiredSymbols()
	got[1] = "XRP"
	require.Equal(t, []string{"BTC", "ETH"}, validator.RequiredSymbols())
}
