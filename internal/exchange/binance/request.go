package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/nattawatt/binance-thb-dashboard/internal/monitoring"
)

// APIError represents a non-2xx reply from the Binance REST API.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("binance api error %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("binance api error %d: %s", e.StatusCode, e.Message)
}

// InvalidRequestError reports a request rejected locally, before any call to
// the exchange was made.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

func invalidRequest(format string, args ...interface{}) error {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}

// doPublic performs an unauthenticated request.
func (c *Client) doPublic(ctx context.Context, method, path string, params Params) ([]byte, error) {
	return c.do(ctx, method, path, params, false)
}

// doSigned appends a fresh millisecond timestamp, signs the full parameter
// set and performs the request with the API key header attached. The
// timestamp and signature are regenerated on every call; a signature is
// never reused.
func (c *Client) doSigned(ctx context.Context, method, path string, params Params) ([]byte, error) {
	params = params.Add("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	params = params.Add("signature", Sign(params, c.secretKey))
	return c.do(ctx, method, path, params, true)
}

func (c *Client) do(ctx context.Context, method, path string, params Params, signed bool) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if signed {
		req.Header.Set("X-MBX-APIKEY", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	monitoring.ObserveUpstreamLatency(path, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}

		// Binance reports failures as {"code": -1121, "msg": "..."}.
		var payload struct {
			Code int    `json:"code"`
			Msg  string `json:"msg"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Msg != "" {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Msg
		}

		return nil, apiErr
	}

	return body, nil
}
