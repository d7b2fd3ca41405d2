package api

import (
	"context"
	"fmt"

	"github.com/rickgao/ledgerx-client/internal/model"
)

// GetPositions fetches the account's positions with their contracts.
func (c *Client) GetPositions(ctx context.Context) ([]model.Position, error) {
	raw, err := getList[APIPosition](ctx, c, "/trading/positions")
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	positions, err := convertAll(raw, func(p *APIPosition) (model.Position, error) {
		return p.ToModel(c.precision)
	})
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	return positions, nil
}
