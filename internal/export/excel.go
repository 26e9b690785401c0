package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
)

const ordersSheet = "Orders"

// ordersHeader matches the field order of the /orders JSON payload so the
// spreadsheet and the API agree.
var ordersHeader = []interface{}{
	"Order ID", "Symbol", "Side", "Type", "Status", "Price", "Quantity", "Executed", "Time",
}

// OrdersWorkbook renders an order history listing as an Excel workbook.
func OrdersWorkbook(orders []binance.Order) (*excelize.File, error) {
	fx := excelize.NewFile()
	fx.SetSheetName(fx.GetSheetName(0), ordersSheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := fx.SetSheetRow(ordersSheet, "A1", &ordersHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	if err := fx.SetCellStyle(ordersSheet, "A1", "I1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for i, order := range orders {
		row := []interface{}{
			order.OrderID,
			order.Symbol,
			string(order.Side),
			string(order.Type),
			string(order.Status),
			order.Price,
			order.OrigQty,
			order.ExecutedQty,
			formatOrderTime(order.Time),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := fx.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write order row %d: %w", i+1, err)
		}
	}

	if err := fx.SetColWidth(ordersSheet, "A", "I", 16); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	return fx, nil
}

func formatOrderTime(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05")
}
