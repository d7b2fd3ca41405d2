package api

import (
	"context"
	"fmt"

	"github.com/rickgao/ledgerx-client/internal/fanout"
	"github.com/rickgao/ledgerx-client/internal/model"
)

// GetContractTicker fetches the ticker of a single contract.
func (c *Client) GetContractTicker(ctx context.Context, contractID uint64) (model.Ticker, error) {
	path := fmt.Sprintf("/trading/contracts/%d/ticker", contractID)

	var resp TickerResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return model.Ticker{}, fmt.Errorf("get ticker %d: %w", contractID, err)
	}

	ticker, err := resp.Data.ToModel(c.precision)
	if err != nil {
		return model.Ticker{}, fmt.Errorf("get ticker %d: %w", contractID, err)
	}

	return ticker, nil
}

// GetContractTickers fetches the tickers of every contract concurrently.
// Any failure discards all results. Duplicate IDs yield one entry.
func (c *Client) GetContractTickers(ctx context.Context, contractIDs []uint64) (map[uint64]model.Ticker, error) {
	tickers, err := fanout.FetchAll(ctx, contractIDs, c.GetContractTicker)
	if err != nil {
		return nil, fmt.Errorf("get tickers: %w", err)
	}
	return tickers, nil
}

// GetContractTickersEach is like GetContractTickers but reports the outcome
// of each contract separately, so one failure does not hide the others.
func (c *Client) GetContractTickersEach(ctx context.Context, contractIDs []uint64) map[uint64]fanout.Result[model.Ticker] {
	return fanout.FetchEach(ctx, contractIDs, c.GetContractTicker)
}
