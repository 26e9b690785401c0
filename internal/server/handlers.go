package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
	"github.com/nattawatt/binance-thb-dashboard/internal/export"
	"github.com/nattawatt/binance-thb-dashboard/internal/view"
)

const defaultSymbol = "BTCUSDT"

// handlePrice serves the current price for one symbol.
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		symbol = defaultSymbol
	}

	price, err := s.exchange.GetTickerPrice(r.Context(), symbol)
	if err != nil {
		s.respondUpstreamError(w, "get price", err)
		return
	}

	s.health.RecordSuccess()
	s.respondOK(w, price)
}

// tickersPayload carries the shaped ticker board plus the conversion rate
// used, echoed once at the top level.
type tickersPayload struct {
	Success       bool          `json:"success"`
	Data          []view.Ticker `json:"data"`
	USDTToTHBRate float64       `json:"usdtToThbRate"`
}

// handleTickers serves the top tickers by quote volume, THB-annotated.
func (s *Server) handleTickers(w http.ResponseWriter, r *http.Request) {
	tickers, err := s.exchange.GetTicker24hr(r.Context(), "")
	if err != nil {
		s.respondUpstreamError(w, "get tickers", err)
		return
	}

	rate := s.rates.USDTToTHB(r.Context())

	s.health.RecordSuccess()
	s.writeJSON(w, http.StatusOK, tickersPayload{
		Success:       true,
		Data:          view.ShapeTickers(tickers, rate),
		USDTToTHBRate: rate,
	})
}

// handleBalance serves the filtered account balances and the exchange's own
// total asset value.
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	info, err := s.exchange.GetAccountInfo(r.Context())
	if err != nil {
		s.respondUpstreamError(w, "get balance", err)
		return
	}

	s.health.RecordSuccess()
	s.respondOK(w, map[string]interface{}{
		"balances":        view.ShapeBalances(info.Balances),
		"totalAssetValue": info.TotalAssetValue,
	})
}

// handleOrders serves order history or the open order list.
func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.fetchOrders(r)
	if err != nil {
		s.respondUpstreamError(w, "get orders", err)
		return
	}

	s.health.RecordSuccess()
	s.respondOK(w, orders)
}

// handleOrdersExport serves order history as an XLSX attachment.
func (s *Server) handleOrdersExport(w http.ResponseWriter, r *http.Request) {
	orders, err := s.fetchOrders(r)
	if err != nil {
		s.respondUpstreamError(w, "export orders", err)
		return
	}

	workbook, err := export.OrdersWorkbook(orders)
	if err != nil {
		s.respondUpstreamError(w, "export orders", err)
		return
	}
	defer workbook.Close()

	s.health.RecordSuccess()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	if err := workbook.Write(w); err != nil {
		s.log.WithError(err).Error("failed to write workbook")
	}
}

func (s *Server) fetchOrders(r *http.Request) ([]binance.Order, error) {
	q := r.URL.Query()

	symbol := q.Get("symbol")
	if symbol == "" {
		symbol = defaultSymbol
	}

	if q.Get("type") == "open" {
		return s.exchange.GetOpenOrders(r.Context(), symbol)
	}

	limit := binance.DefaultOrderLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, &binance.InvalidRequestError{Reason: "invalid limit"}
		}
		limit = n
	}

	return s.exchange.GetAllOrders(r.Context(), symbol, limit)
}

// tradeRequest is the /trade request body.
type tradeRequest struct {
	Action    string `json:"action"`
	Symbol    string `json:"symbol"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
	OrderType string `json:"orderType"`
}

// handleTrade places a market or limit order.
func (s *Server) handleTrade(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Symbol == "" || req.Quantity == "" {
		s.respondError(w, http.StatusBadRequest, "missing required parameters")
		return
	}

	side := binance.OrderSide(req.Action)
	if side != binance.OrderSideBuy && side != binance.OrderSideSell {
		s.respondError(w, http.StatusBadRequest, "invalid action")
		return
	}

	orderType := binance.OrderType(req.OrderType)
	switch orderType {
	case binance.OrderTypeMarket:
	case binance.OrderTypeLimit:
		if req.Price == "" {
			s.respondError(w, http.StatusBadRequest, "price required for LIMIT orders")
			return
		}
	default:
		s.respondError(w, http.StatusBadRequest, "invalid order type")
		return
	}

	order, err := s.exchange.PlaceOrder(r.Context(), binance.OrderParams{
		Symbol:   req.Symbol,
		Side:     side,
		Type:     orderType,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		s.respondUpstreamError(w, "place order", err)
		return
	}

	s.health.RecordSuccess()
	s.respondOK(w, order)
}

// cancelRequest is the /cancel request body. OrderID accepts either a JSON
// number or a numeric string.
type cancelRequest struct {
	Symbol  string      `json:"symbol"`
	OrderID json.Number `json:"orderId"`
}

// handleCancel cancels an open order.
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Symbol == "" || req.OrderID == "" {
		s.respondError(w, http.StatusBadRequest, "missing symbol or orderId")
		return
	}

	orderID, err := req.OrderID.Int64()
	if err != nil || orderID <= 0 {
		s.respondError(w, http.StatusBadRequest, "invalid orderId")
		return
	}

	order, err := s.exchange.CancelOrder(r.Context(), req.Symbol, orderID)
	if err != nil {
		s.respondUpstreamError(w, "cancel order", err)
		return
	}

	s.health.RecordSuccess()
	s.respondOK(w, order)
}
