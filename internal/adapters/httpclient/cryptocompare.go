package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"pricesplash/internal/domain"
	"strings"
	"time"

	"resty.dev/v3"
)

const (
	DefaultCryptoCompareURL = "https://min-api.cryptocompare.com"
	priceMultiPath          = "/data/pricemulti"
)

type CryptoCompareClient struct {
	client *resty.Client
}

// GetPrices returns the quotes for the requested symbols. Symbols the upstream
// did not return are simply absent from the map; deciding whether that is
// acceptable is up to the caller. Other top-level fields (e.g. "Warning") are
// ignored.
func (c *CryptoCompareClient) GetPrices(ctx context.Context, symbols []string, currencies []string) (map[string]*domain.CryptoPrice, error) {
	var body map[string]json.RawMessage

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fsyms": strings.Join(symbols, ","),
			"tsyms": strings.Join(currencies, ","),
		}).
		SetResult(&body).
		Get(priceMultiPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute pricemulti request: %v", domain.ErrUpstreamUnavailable, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: unexpected status code %d from pricemulti", domain.ErrUpstreamUnavailable, resp.StatusCode())
	}

	quotes := make(map[string]*domain.CryptoPrice, len(symbols))
	for _, symbol := range symbols {
		raw, ok := body[symbol]
		if !ok {
			continue
		}
		var quote *domain.CryptoPrice
		if err = json.Unmarshal(raw, &quote); err != nil {
			return nil, fmt.Errorf("%w: quote for %s: %v", domain.ErrMalformedResponse, symbol, err)
		}
		quotes[symbol] = quote
	}
	return quotes, nil
}

func NewCryptoCompareClient(baseURL string, apiKey string, timeout time.Duration) *CryptoCompareClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	if apiKey != "" {
		client.SetHeader("Authorization", "Apikey "+apiKey)
	}
	return &CryptoCompareClient{client: client}
}
