package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetAccountInfo gets the account balances and total asset value. The call
// carries no parameters beyond the signed timestamp.
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	body, err := c.doSigned(ctx, http.MethodGet, "/api/v3/account", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}

	var info AccountInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode account info response: %w", err)
	}

	return &info, nil
}
