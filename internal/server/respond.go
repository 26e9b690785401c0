package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
	"github.com/nattawatt/binance-thb-dashboard/internal/monitoring"
)

// envelope is the uniform response body shared by every proxy endpoint.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) respondOK(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, envelope{Success: false, Error: msg})
}

// respondUpstreamError maps a failed exchange call onto the envelope:
// locally rejected requests become 400, everything else 500.
func (s *Server) respondUpstreamError(w http.ResponseWriter, operation string, err error) {
	var invalid *binance.InvalidRequestError
	if errors.As(err, &invalid) {
		s.respondError(w, http.StatusBadRequest, invalid.Reason)
		return
	}

	s.log.WithError(err).Errorf("%s failed", operation)
	monitoring.RecordUpstreamError(operation)
	s.health.RecordFailure(err.Error())
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.WithError(err).Error("failed to write response")
	}
}
