// Package server exposes the dashboard's proxy surface: thin HTTP handlers
// that forward to the exchange client, shape the responses and wrap
// everything in a uniform JSON envelope.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
	"github.com/nattawatt/binance-thb-dashboard/internal/monitoring"
)

type exchangeClient interface {
	GetTickerPrice(ctx context.Context, symbol string) (*binance.PriceTicker, error)
	GetTicker24hr(ctx context.Context, symbol string) ([]binance.Ticker24hr, error)
	GetAccountInfo(ctx context.Context) (*binance.AccountInfo, error)
	GetAllOrders(ctx context.Context, symbol string, limit int) ([]binance.Order, error)
	GetOpenOrders(ctx context.Context, symbol string) ([]binance.Order, error)
	PlaceOrder(ctx context.Context, params binance.OrderParams) (*binance.Order, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error)
}

type rateSource interface {
	USDTToTHB(ctx context.Context) float64
}

// Server holds the proxy's collaborators. It keeps no per-request state;
// concurrent requests share only the immutable client and the monitoring
// registries.
type Server struct {
	exchange  exchangeClient
	rates     rateSource
	health    *monitoring.HealthChecker
	log       logrus.FieldLogger
	staticDir string
}

// New creates a new proxy server
func New(exchange exchangeClient, rates rateSource, health *monitoring.HealthChecker, log logrus.FieldLogger, staticDir string) *Server {
	return &Server{
		exchange:  exchange,
		rates:     rates,
		health:    health,
		log:       log,
		staticDir: staticDir,
	}
}

// Routes assembles the router for the proxy surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/price", s.handlePrice)
	r.Get("/tickers", s.handleTickers)
	r.Get("/balance", s.handleBalance)
	r.Get("/orders", s.handleOrders)
	r.Get("/orders/export", s.handleOrdersExport)
	r.Post("/trade", s.handleTrade)
	r.Post("/cancel", s.handleCancel)

	r.Method(http.MethodGet, "/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", monitoring.Handler())

	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}

	return r
}

// instrument logs each request and records it in the request counter. The
// counter is labeled with the chi route pattern rather than the raw path so
// static assets and probe URLs cannot mint unbounded label series.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := chi.RouteContext(r.Context()).RoutePattern()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		monitoring.RecordRequest(endpoint, ww.Status())
		s.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": ww.Status(),
		}).Info("request served")
	})
}
