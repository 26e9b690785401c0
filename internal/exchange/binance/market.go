package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetTickerPrice gets the current price for a symbol.
func (c *Client) GetTickerPrice(ctx context.Context, symbol string) (*PriceTicker, error) {
	params := Params{}.Add("symbol", symbol)

	body, err := c.doPublic(ctx, http.MethodGet, "/api/v3/ticker/price", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker price: %w", err)
	}

	var ticker PriceTicker
	if err := json.Unmarshal(body, &ticker); err != nil {
		return nil, fmt.Errorf("failed to decode ticker price response: %w", err)
	}

	return &ticker, nil
}

// GetTicker24hr gets 24-hour rolling statistics. With an empty symbol the
// exchange returns stats for every symbol as a list; for a named symbol it
// returns a single object, which is normalized to a one-element slice so
// callers always receive a list.
func (c *Client) GetTicker24hr(ctx context.Context, symbol string) ([]Ticker24hr, error) {
	var params Params
	if symbol != "" {
		params = params.Add("symbol", symbol)
	}

	body, err := c.doPublic(ctx, http.MethodGet, "/api/v3/ticker/24hr", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get 24hr tickers: %w", err)
	}

	if isJSONObject(body) {
		var ticker Ticker24hr
		if err := json.Unmarshal(body, &ticker); err != nil {
			return nil, fmt.Errorf("failed to decode 24hr ticker response: %w", err)
		}
		return []Ticker24hr{ticker}, nil
	}

	var tickers []Ticker24hr
	if err := json.Unmarshal(body, &tickers); err != nil {
		return nil, fmt.Errorf("failed to decode 24hr ticker response: %w", err)
	}

	return tickers, nil
}

func isJSONObject(body []byte) bool {
	for _, b := range body {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
