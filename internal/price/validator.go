package price

import (
	"fmt"
	"pricesplash/internal/domain"
	"slices"
	"strings"
)

type SymbolValidator struct {
	required []string // read only copy
}

// Validate checks that every required symbol is present and non-null and
// returns the quotes keyed by symbol. Extra symbols are dropped.
func (v *SymbolValidator) Validate(quotes map[string]*domain.CryptoPrice) (map[string]domain.CryptoPrice, error) {
	var missing []string
	prices := make(map[string]domain.CryptoPrice, len(v.required))
	for _, symbol := range v.required {
		q, ok := quotes[symbol]
		if !ok || q == nil {
			missing = append(missing, symbol)
			continue
		}
		prices[symbol] = *q
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required symbols %s", domain.ErrMalformedResponse, strings.Join(missing, ","))
	}
	return prices, nil
}

func (v *SymbolValidator) RequiredSymbols() []string {
	return slices.Clone(v.required)
}

func NewValidator(required []string) *SymbolValidator {
	return &SymbolValidator{required: slices.Clone(required)}
}
