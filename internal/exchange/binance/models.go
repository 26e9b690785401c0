package binance

import "encoding/json"

// OrderSide represents the side of an order
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderType represents the type of an order
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

// TimeInForce represents how long an order remains active
type TimeInForce string

// TimeInForceGTC keeps a limit order open until it is filled or canceled.
// It is the only policy this client submits.
const TimeInForceGTC TimeInForce = "GTC"

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusExpired         OrderStatus = "EXPIRED"
)

// PriceTicker is the current price of a single symbol.
type PriceTicker struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// Ticker24hr is the rolling 24-hour statistics for a symbol. All numeric
// fields arrive as decimal strings and are passed through unmodified.
type Ticker24hr struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
}

// Balance is a single asset balance on the account.
type Balance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

// AccountInfo is the signed account endpoint response. TotalAssetValue is an
// opaque passthrough; the exchange computes it and this client never does.
type AccountInfo struct {
	Balances        []Balance       `json:"balances"`
	TotalAssetValue json.RawMessage `json:"totalAssetValue,omitempty"`
}

// Order is a spot order as reported by the exchange.
type Order struct {
	OrderID     int64       `json:"orderId"`
	Symbol      string      `json:"symbol"`
	Side        OrderSide   `json:"side"`
	Type        OrderType   `json:"type"`
	Status      OrderStatus `json:"status"`
	Price       string      `json:"price"`
	OrigQty     string      `json:"origQty"`
	ExecutedQty string      `json:"executedQty"`
	TimeInForce TimeInForce `json:"timeInForce,omitempty"`
	Time        int64       `json:"time,omitempty"`
	UpdateTime  int64       `json:"updateTime,omitempty"`
}
