package view

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
)

// TestShapeTickers_FilterAndConvert tests suffix filtering and THB annotation
func TestShapeTickers_FilterAndConvert(t *testing.T) {
	tickers := []binance.Ticker24hr{
		{Symbol: "BTCUSDT", LastPrice: "65000", HighPrice: "66000", LowPrice: "64000", QuoteVolume: "100"},
		{Symbol: "ETHBTC", LastPrice: "0.05", QuoteVolume: "50"},
	}

	shaped := ShapeTickers(tickers, 32)

	require.Len(t, shaped, 1)
	assert.Equal(t, "BTCUSDT", shaped[0].Symbol)
	assert.Equal(t, "2080000", shaped[0].LastPriceTHB)
	assert.Equal(t, "2112000", shaped[0].HighPriceTHB)
	assert.Equal(t, "2048000", shaped[0].LowPriceTHB)
	assert.Equal(t, 32.0, shaped[0].USDTToTHBRate)
}

// TestShapeTickers_DropsZeroVolume tests that zero and unparseable quote
// volumes are excluded
func TestShapeTickers_DropsZeroVolume(t *testing.T) {
	tickers := []binance.Ticker24hr{
		{Symbol: "AUSDT", QuoteVolume: "0"},
		{Symbol: "BUSDT", QuoteVolume: "not-a-number"},
		{Symbol: "CUSDT", QuoteVolume: "1"},
	}

	shaped := ShapeTickers(tickers, 1)

	require.Len(t, shaped, 1)
	assert.Equal(t, "CUSDT", shaped[0].Symbol)
}

// TestShapeTickers_SortsByQuoteVolume tests descending quote volume ordering
func TestShapeTickers_SortsByQuoteVolume(t *testing.T) {
	tickers := []binance.Ticker24hr{
		{Symbol: "AUSDT", QuoteVolume: "10"},
		{Symbol: "BUSDT", QuoteVolume: "1000"},
		{Symbol: "CUSDT", QuoteVolume: "100"},
	}

	shaped := ShapeTickers(tickers, 1)

	require.Len(t, shaped, 3)
	assert.Equal(t, "BUSDT", shaped[0].Symbol)
	assert.Equal(t, "CUSDT", shaped[1].Symbol)
	assert.Equal(t, "AUSDT", shaped[2].Symbol)
}

// TestShapeTickers_CapsAtMax tests that the board is truncated to MaxTickers
func TestShapeTickers_CapsAtMax(t *testing.T) {
	tickers := make([]binance.Ticker24hr, 0, MaxTickers+25)
	for i := 0; i < MaxTickers+25; i++ {
		tickers = append(tickers, binance.Ticker24hr{
			Symbol:      fmt.Sprintf("COIN%dUSDT", i),
			QuoteVolume: strconv.Itoa(i + 1),
		})
	}

	shaped := ShapeTickers(tickers, 1)

	assert.Len(t, shaped, MaxTickers)
	// Highest volume entry survives the cut.
	assert.Equal(t, strconv.Itoa(MaxTickers+25), shaped[0].QuoteVolume)
}

// TestShapeTickers_UnparseablePrice tests that a price that does not parse
// passes through unchanged instead of collapsing to zero
func TestShapeTickers_UnparseablePrice(t *testing.T) {
	tickers := []binance.Ticker24hr{
		{Symbol: "BTCUSDT", LastPrice: "n/a", HighPrice: "66000", LowPrice: "64000", QuoteVolume: "100"},
	}

	shaped := ShapeTickers(tickers, 32)

	require.Len(t, shaped, 1)
	assert.Equal(t, "n/a", shaped[0].LastPriceTHB)
	assert.Equal(t, "2112000", shaped[0].HighPriceTHB)
}

// TestShapeTickers_Empty tests shaping an empty list
func TestShapeTickers_Empty(t *testing.T) {
	assert.Empty(t, ShapeTickers(nil, 32.33))
}

// TestShapeBalances tests that only balances with free or locked > 0 are
// kept, in their original order
func TestShapeBalances(t *testing.T) {
	balances := []binance.Balance{
		{Asset: "BTC", Free: "0.5", Locked: "0"},
		{Asset: "ETH", Free: "0", Locked: "0"},
		{Asset: "USDT", Free: "0", Locked: "12.5"},
		{Asset: "BNB", Free: "0.00000000", Locked: "0.00000000"},
	}

	shaped := ShapeBalances(balances)

	require.Len(t, shaped, 2)
	assert.Equal(t, "BTC", shaped[0].Asset)
	assert.Equal(t, "USDT", shaped[1].Asset)
}

// TestShapeBalances_Empty tests shaping an empty balance list
func TestShapeBalances_Empty(t *testing.T) {
	assert.Empty(t, ShapeBalances(nil))
}
