package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
)

// TestOrdersWorkbook tests the sheet layout and row contents
func TestOrdersWorkbook(t *testing.T) {
	orders := []binance.Order{
		{
			OrderID:     42,
			Symbol:      "BTCUSDT",
			Side:        binance.OrderSideBuy,
			Type:        binance.OrderTypeLimit,
			Status:      binance.OrderStatusFilled,
			Price:       "64000",
			OrigQty:     "0.001",
			ExecutedQty: "0.001",
			Time:        1700000000000,
		},
	}

	fx, err := OrdersWorkbook(orders)
	require.NoError(t, err)
	defer fx.Close()

	assert.Equal(t, []string{"Orders"}, fx.GetSheetList())

	header, err := fx.GetCellValue("Orders", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Order ID", header)

	symbol, err := fx.GetCellValue("Orders", "B2")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", symbol)

	status, err := fx.GetCellValue("Orders", "E2")
	require.NoError(t, err)
	assert.Equal(t, "FILLED", status)

	when, err := fx.GetCellValue("Orders", "I2")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14 22:13:20", when)
}

// TestOrdersWorkbook_Empty tests that an empty listing still yields a header
func TestOrdersWorkbook_Empty(t *testing.T) {
	fx, err := OrdersWorkbook(nil)
	require.NoError(t, err)
	defer fx.Close()

	header, err := fx.GetCellValue("Orders", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Order ID", header)

	empty, err := fx.GetCellValue("Orders", "A2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
