package api

import (
	"context"
	"fmt"

	"github.com/rickgao/ledgerx-client/internal/model"
)

// GetTransactions fetches the account's ledger entries. A single entry that
// cannot be normalized fails the whole call.
func (c *Client) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	raw, err := getList[APITransaction](ctx, c, "/funds/transactions")
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	txs, err := convertAll(raw, func(tx *APITransaction) (model.Transaction, error) {
		return tx.ToModel(c.precision)
	})
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	return txs, nil
}
