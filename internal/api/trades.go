package api

import (
	"context"
	"fmt"

	"github.com/rickgao/ledgerx-client/internal/model"
)

// GetTrades fetches the account's executions.
func (c *Client) GetTrades(ctx context.Context) ([]model.Trade, error) {
	raw, err := getList[APITrade](ctx, c, "/trading/trades")
	if err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}

	trades, err := convertAll(raw, func(tr *APITrade) (model.Trade, error) {
		return tr.ToModel(c.precision)
	})
	if err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}

	return trades, nil
}
