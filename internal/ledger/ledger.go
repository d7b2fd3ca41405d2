// Package ledger derives per-asset account balances from transaction history.
package ledger

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/amount"
	"github.com/rickgao/ledgerx-client/internal/currency"
	"github.com/rickgao/ledgerx-client/internal/model"
)

// Balances maps an asset to its running total.
type Balances map[currency.Code]decimal.Decimal

// ScaleMismatchError reports a normalized amount whose scale differs from its
// asset's precision. It means a value skipped normalization.
type ScaleMismatchError struct {
	Asset currency.Code
	Want  uint32
	Got   uint32
}

func (e *ScaleMismatchError) Error() string {
	return fmt.Sprintf("%s amount has scale %d, want %d", e.Asset, e.Got, e.Want)
}

// Add adds delta to the balance of asset. delta must carry the asset's precision.
func (b Balances) Add(asset currency.Code, delta decimal.Decimal, table *currency.Table) error {
	digits, err := table.PrecisionOf(asset)
	if err != nil {
		return err
	}
	if got := amount.ScaleOf(delta); got != digits {
		return &ScaleMismatchError{Asset: asset, Want: digits, Got: got}
	}

	if total, ok := b[asset]; ok {
		b[asset] = total.Add(delta)
	} else {
		b[asset] = delta
	}
	return nil
}

// Codes returns the assets held, sorted.
func (b Balances) Codes() []currency.Code {
	return slices.Sorted(maps.Keys(b))
}

// Aggregate sums NetChange per asset over txs in order. Signs are taken as
// delivered. It stops at the first transaction with an unknown asset or a
// mis-scaled amount and returns no balances.
func Aggregate(txs []model.Transaction, table *currency.Table) (Balances, error) {
	balances := make(Balances)
	for _, tx := range txs {
		if err := balances.Add(tx.Asset, tx.NetChange, table); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", tx.ID, err)
		}
	}
	return balances, nil
}
