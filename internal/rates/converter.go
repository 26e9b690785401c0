package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nattawatt/binance-thb-dashboard/internal/monitoring"
)

// FallbackTHBRate is used whenever the rate source cannot be reached or
// returns an unusable body. Ticker rendering must not depend on the rate
// source being up, so the converter degrades instead of failing.
const FallbackTHBRate = 32.33

// DefaultRateURL is the Binance Thailand currency service.
const DefaultRateURL = "https://www.binance.th/bapi/asset/v1/public/asset-service/product/currency"

const thbPair = "THB_USD"

// Converter fetches the USDT to THB conversion rate.
type Converter struct {
	url        string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewConverter creates a new rate converter. An empty url selects the
// default Binance Thailand service.
func NewConverter(url string, timeout time.Duration, log logrus.FieldLogger) *Converter {
	if url == "" {
		url = DefaultRateURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Converter{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// USDTToTHB returns THB per USDT. It never fails: on any error the fallback
// rate is returned and the degradation is only logged.
func (c *Converter) USDTToTHB(ctx context.Context) float64 {
	rate, err := c.fetch(ctx)
	if err != nil {
		c.log.WithError(err).Warnf("failed to fetch THB rate, using fallback %.2f", FallbackTHBRate)
		monitoring.RecordRateFallback()
		return FallbackTHBRate
	}
	return rate
}

func (c *Converter) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("lang", "th")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call rate service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Success bool `json:"success"`
		Data    []struct {
			Pair string      `json:"pair"`
			Rate json.Number `json:"rate"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode rate response: %w", err)
	}

	if !payload.Success {
		return 0, fmt.Errorf("rate service reported failure")
	}

	for _, item := range payload.Data {
		if item.Pair != thbPair {
			continue
		}
		rate, err := strconv.ParseFloat(item.Rate.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse rate %q: %w", item.Rate, err)
		}
		return rate, nil
	}

	return 0, fmt.Errorf("pair %s not found in rate response", thbPair)
}
