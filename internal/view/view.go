// Package view reshapes raw exchange responses into the payloads the
// dashboard renders.
package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
)

const (
	// QuoteSuffix restricts the ticker board to USDT-quoted pairs.
	QuoteSuffix = "USDT"

	// MaxTickers caps the ticker board size.
	MaxTickers = 50
)

// Ticker is a 24h ticker annotated with THB equivalents of its prices and
// the conversion rate that produced them.
type Ticker struct {
	binance.Ticker24hr
	LastPriceTHB  string  `json:"lastPriceTHB"`
	HighPriceTHB  string  `json:"highPriceTHB"`
	LowPriceTHB   string  `json:"lowPriceTHB"`
	USDTToTHBRate float64 `json:"usdtToThbRate"`
}

// ShapeTickers keeps USDT-quoted symbols with positive quote volume, sorts
// them by quote volume descending, caps the list at MaxTickers and annotates
// each entry with THB prices at the given rate.
func ShapeTickers(tickers []binance.Ticker24hr, rate float64) []Ticker {
	filtered := make([]binance.Ticker24hr, 0, len(tickers))
	for _, t := range tickers {
		if !strings.HasSuffix(t.Symbol, QuoteSuffix) {
			continue
		}
		if qv, err := strconv.ParseFloat(t.QuoteVolume, 64); err != nil || qv <= 0 {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		qi, _ := strconv.ParseFloat(filtered[i].QuoteVolume, 64)
		qj, _ := strconv.ParseFloat(filtered[j].QuoteVolume, 64)
		return qi > qj
	})

	if len(filtered) > MaxTickers {
		filtered = filtered[:MaxTickers]
	}

	shaped := make([]Ticker, 0, len(filtered))
	for _, t := range filtered {
		shaped = append(shaped, Ticker{
			Ticker24hr:    t,
			LastPriceTHB:  toTHB(t.LastPrice, rate),
			HighPriceTHB:  toTHB(t.HighPrice, rate),
			LowPriceTHB:   toTHB(t.LowPrice, rate),
			USDTToTHBRate: rate,
		})
	}

	return shaped
}

// ShapeBalances keeps balances with a free or locked amount strictly greater
// than zero, preserving their relative order.
func ShapeBalances(balances []binance.Balance) []binance.Balance {
	shaped := make([]binance.Balance, 0, len(balances))
	for _, b := range balances {
		free, _ := strconv.ParseFloat(b.Free, 64)
		locked, _ := strconv.ParseFloat(b.Locked, 64)
		if free > 0 || locked > 0 {
			shaped = append(shaped, b)
		}
	}
	return shaped
}

// toTHB converts a decimal string price and re-serializes the product as a
// string, so the response body stays string-typed like the exchange's own
// numeric fields. A value that does not parse passes through unchanged.
func toTHB(price string, rate float64) string {
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return price
	}
	return strconv.FormatFloat(v*rate, 'f', -1, 64)
}
