package api

import (
	"context"
	"fmt"

	"github.com/rickgao/ledgerx-client/internal/ledger"
)

// GetBalances derives per-asset balances by summing the net change of every
// transaction.
func (c *Client) GetBalances(ctx context.Context) (ledger.Balances, error) {
	txs, err := c.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}

	balances, err := ledger.Aggregate(txs, c.precision.Table)
	if err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}

	c.logger.Debug("balances aggregated",
		"transactions", len(txs),
		"assets", len(balances),
	)

	return balances, nil
}
