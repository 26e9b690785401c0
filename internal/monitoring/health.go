package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks the outcome of upstream exchange calls so the health
// endpoint can report whether the dashboard is currently degraded.
type HealthChecker struct {
	mu          sync.RWMutex
	lastSuccess time.Time
	lastFailure time.Time
	lastError   string
}

// HealthStatus is the health endpoint response body.
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	LastSuccess time.Time `json:"last_success,omitempty"`
	Uptime      string    `json:"uptime"`
	LastError   string    `json:"last_error,omitempty"`
}

// NewHealthChecker creates a new health checker
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

// RecordSuccess notes a successful upstream call
func (h *HealthChecker) RecordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastSuccess = time.Now()
}

// RecordFailure notes a failed upstream call
func (h *HealthChecker) RecordFailure(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastFailure = time.Now()
	h.lastError = msg
}

// ServeHTTP reports healthy unless the most recent upstream outcome was a
// failure, in which case it reports degraded with 503.
func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	code := http.StatusOK
	if !h.lastFailure.IsZero() && h.lastFailure.After(h.lastSuccess) {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	health := HealthStatus{
		Status:      status,
		Timestamp:   time.Now(),
		LastSuccess: h.lastSuccess,
		Uptime:      time.Since(startTime).String(),
	}
	if status != "healthy" {
		health.LastError = h.lastError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(health)
}
