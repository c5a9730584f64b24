package domain

import "time"

// LatestPricesKey is the key under which the current snapshot is stored.
const LatestPricesKey = "latest_prices"

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Symbols tracked by the price cache, in upstream request order.
var Symbols = []string{"BTC", "ETH", "SOL", "SUI"}

// Currencies quoted for every symbol, in upstream request order.
var Currencies = []string{"USD", "EUR"}

type CryptoPrice struct {
	USD float64 `json:"USD"`
	EUR float64 `json:"EUR"`
}

type PriceSnapshot struct {
	BTC       CryptoPrice `json:"BTC"`
	ETH       CryptoPrice `json:"ETH"`
	SOL       CryptoPrice `json:"SOL"`
	SUI       CryptoPrice `json:"SUI"`
	Timestamp string      `json:"timestamp"`
}

// NewPriceSnapshot builds a snapshot from quotes that are known to contain every symbol.
func NewPriceSnapshot(quotes map[string]CryptoPrice, capturedAt time.Time) PriceSnapshot {
	return PriceSnapshot{
		BTC:       CryptoPrice{USD: quotes["BTC"].USD, EUR: quotes["BTC"].EUR},
		ETH:       CryptoPrice{USD: quotes["ETH"].USD, EUR: quotes["ETH"].EUR},
		SOL:       CryptoPrice{USD: quotes["SOL"].USD, EUR: quotes["SOL"].EUR},
		SUI:       CryptoPrice{USD: quotes["SUI"].USD, EUR: quotes["SUI"].EUR},
		Timestamp: capturedAt.UTC().Format(TimestampLayout),
	}
}
