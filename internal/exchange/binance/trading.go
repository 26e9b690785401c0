package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// DefaultOrderLimit bounds order history listings when the caller does not
// supply a limit.
const DefaultOrderLimit = 10

// OrderParams holds parameters for placing an order. Quantity and Price are
// decimal strings so the values reach the exchange exactly as entered.
type OrderParams struct {
	Symbol   string
	Side     OrderSide
	Type     OrderType
	Quantity string
	Price    string // required for LIMIT orders
}

func (p OrderParams) validate() error {
	if p.Symbol == "" {
		return invalidRequest("symbol is required")
	}
	if p.Side != OrderSideBuy && p.Side != OrderSideSell {
		return invalidRequest("invalid order side %q", p.Side)
	}
	if p.Type != OrderTypeMarket && p.Type != OrderTypeLimit {
		return invalidRequest("invalid order type %q", p.Type)
	}
	if p.Quantity == "" {
		return invalidRequest("quantity is required")
	}
	if p.Type == OrderTypeLimit && p.Price == "" {
		return invalidRequest("price is required for LIMIT orders")
	}
	return nil
}

// PlaceOrder places a new spot order. MARKET orders omit price and
// timeInForce; LIMIT orders carry the price and a fixed GTC timeInForce.
// Invalid parameters are rejected before any network call.
func (c *Client) PlaceOrder(ctx context.Context, params OrderParams) (*Order, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	query := Params{}.
		Add("symbol", params.Symbol).
		Add("side", string(params.Side)).
		Add("type", string(params.Type))
	if params.Type == OrderTypeLimit {
		query = query.Add("timeInForce", string(TimeInForceGTC))
	}
	query = query.Add("quantity", params.Quantity)
	if params.Type == OrderTypeLimit {
		query = query.Add("price", params.Price)
	}

	body, err := c.doSigned(ctx, http.MethodPost, "/api/v3/order", query)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &order, nil
}

// CancelOrder cancels an open order and returns its final state as reported
// by the exchange.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*Order, error) {
	if symbol == "" {
		return nil, invalidRequest("symbol is required")
	}
	if orderID <= 0 {
		return nil, invalidRequest("orderId is required")
	}

	query := Params{}.
		Add("symbol", symbol).
		Add("orderId", strconv.FormatInt(orderID, 10))

	body, err := c.doSigned(ctx, http.MethodDelete, "/api/v3/order", query)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to decode cancel response: %w", err)
	}

	return &order, nil
}

// GetAllOrders lists order history for a symbol, newest entries bounded by
// limit (DefaultOrderLimit when zero or negative).
func (c *Client) GetAllOrders(ctx context.Context, symbol string, limit int) ([]Order, error) {
	if symbol == "" {
		return nil, invalidRequest("symbol is required")
	}
	if limit <= 0 {
		limit = DefaultOrderLimit
	}

	query := Params{}.
		Add("symbol", symbol).
		Add("limit", strconv.Itoa(limit))

	body, err := c.doSigned(ctx, http.MethodGet, "/api/v3/allOrders", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	var orders []Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders response: %w", err)
	}

	return orders, nil
}

// GetOpenOrders lists open orders, optionally filtered to one symbol.
func (c *Client) GetOpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	var query Params
	if symbol != "" {
		query = query.Add("symbol", symbol)
	}

	body, err := c.doSigned(ctx, http.MethodGet, "/api/v3/openOrders", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get open orders: %w", err)
	}

	var orders []Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode open orders response: %w", err)
	}

	return orders, nil
}
