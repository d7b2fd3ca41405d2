package api

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/amount"
	"github.com/rickgao/ledgerx-client/internal/currency"
	"github.com/rickgao/ledgerx-client/internal/model"
)

var (
	// ErrUnknownDerivativeType is returned for a contract whose
	// derivative_type names no known variant.
	ErrUnknownDerivativeType = errors.New("unknown derivative type")

	// ErrMissingStrike is returned for an option contract without a strike price.
	ErrMissingStrike = errors.New("option contract has no strike price")
)

// Precision resolves the scale of every monetary field.
//
// Prices, fees, premiums and strikes are quoted in Quote regardless of the
// settlement asset; transaction amounts use the precision of their own asset.
// Both are looked up in Table.
type Precision struct {
	Table *currency.Table
	Quote currency.Code
}

// DefaultPrecision returns the built-in table quoted in USD.
func DefaultPrecision() Precision {
	return Precision{Table: currency.DefaultTable(), Quote: currency.USD}
}

// QuoteScale returns the number of fractional digits of quoted amounts.
func (p Precision) QuoteScale() (uint32, error) {
	return p.Table.PrecisionOf(p.Quote)
}

// quoted normalizes a quote-currency amount.
func (p Precision) quoted(raw amount.Raw) (decimal.Decimal, error) {
	scale, err := p.QuoteScale()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Rescale(raw, scale)
}

// ToModel converts an APIContract to its model variant. Only options carry a
// monetary field; day-ahead swaps are copied as is.
func (c *APIContract) ToModel(p Precision) (model.Contract, error) {
	info := model.ContractInfo{
		ID:              c.ID,
		Name:            deref(c.Name),
		MinIncrement:    c.MinIncrement,
		DateLive:        c.DateLive,
		DateExpires:     c.DateExpires,
		DateExercise:    c.DateExercise,
		OpenInterest:    c.OpenInterest,
		Multiplier:      c.Multiplier,
		Label:           c.Label,
		Active:          c.Active,
		UnderlyingAsset: currency.Code(c.UnderlyingAsset),
		CollateralAsset: currency.Code(c.CollateralAsset),
	}

	switch c.DerivativeType {
	case DerivativeDayAheadSwap:
		return model.DayAheadSwap{
			ContractInfo: info,
			IsNextDay:    c.IsNextDay,
		}, nil

	case DerivativeOption:
		if c.StrikePrice == nil {
			return nil, fmt.Errorf("contract %d: %w", c.ID, ErrMissingStrike)
		}
		strike, err := p.quoted(*c.StrikePrice)
		if err != nil {
			return nil, fmt.Errorf("contract %d strike price: %w", c.ID, err)
		}
		return model.OptionContract{
			ContractInfo: info,
			IsCall:       c.IsCall,
			StrikePrice:  strike,
			Type:         model.OptionType(c.OptionType),
		}, nil

	default:
		return nil, fmt.Errorf("contract %d: %w %q", c.ID, ErrUnknownDerivativeType, c.DerivativeType)
	}
}

// ToModel converts an APITicker to model.Ticker.
func (t *APITicker) ToModel(p Precision) (model.Ticker, error) {
	ask, err := p.quoted(t.Ask)
	if err != nil {
		return model.Ticker{}, fmt.Errorf("ticker ask: %w", err)
	}
	bid, err := p.quoted(t.Bid)
	if err != nil {
		return model.Ticker{}, fmt.Errorf("ticker bid: %w", err)
	}

	var lastTrade *model.TickerTrade
	if t.LastTrade != nil {
		price, err := p.quoted(t.LastTrade.Price)
		if err != nil {
			return model.Ticker{}, fmt.Errorf("ticker last trade price: %w", err)
		}
		lastTrade = &model.TickerTrade{
			ID:    t.LastTrade.ID,
			Price: price,
			Size:  t.LastTrade.Size,
			Time:  t.LastTrade.Time,
		}
	}

	return model.Ticker{
		Ask:       ask,
		Bid:       bid,
		Volume24h: t.Volume24h,
		LastTrade: lastTrade,
		Time:      t.Time,
	}, nil
}

// ToModel converts an APITransaction to model.Transaction. Every amount is
// scaled to the precision of the transaction's own asset.
func (tx *APITransaction) ToModel(p Precision) (model.Transaction, error) {
	asset := currency.Code(tx.Asset)
	scale, err := p.Table.PrecisionOf(asset)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", tx.ID, err)
	}

	amt, err := amount.Rescale(tx.Amount, scale)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %d amount: %w", tx.ID, err)
	}

	var balances [4]decimal.NullDecimal
	for i, raw := range []*amount.Raw{
		tx.DebitPreBalance,
		tx.DebitPostBalance,
		tx.CreditPreBalance,
		tx.CreditPostBalance,
	} {
		balances[i], err = amount.RescaleOptional(raw, scale)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %d %s: %w", tx.ID, balanceFields[i], err)
		}
	}

	net, err := amount.Rescale(tx.NetChange, scale)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %d net change: %w", tx.ID, err)
	}

	return model.Transaction{
		ID:                     tx.ID,
		Created:                tx.Created,
		LastUpdated:            tx.LastUpdated,
		Type:                   model.TransactionType(tx.Poly),
		Amount:                 amt,
		DebitAccountFieldName:  tx.DebitAccountFieldName,
		CreditAccountFieldName: tx.CreditAccountFieldName,
		SettlementID:           tx.SettlementID,
		State:                  model.TransactionState(tx.State),
		DepositNoticeID:        tx.DepositNoticeID,
		TradeID:                tx.TradeID,
		GroupID:                deref(tx.GroupID),
		Asset:                  asset,
		DebitPreBalance:        balances[0],
		DebitPostBalance:       balances[1],
		CreditPreBalance:       balances[2],
		CreditPostBalance:      balances[3],
		DebitParticipantName:   deref(tx.DebitParticipantName),
		CreditParticipantName:  deref(tx.CreditParticipantName),
		NetChange:              net,
	}, nil
}

var balanceFields = [4]string{
	"debit pre balance",
	"debit post balance",
	"credit pre balance",
	"credit post balance",
}

// ToModel converts an APITrade to model.Trade.
func (tr *APITrade) ToModel(p Precision) (model.Trade, error) {
	var (
		fields = [4]amount.Raw{tr.FilledPrice, tr.Fee, tr.Rebate, tr.Premium}
		names  = [4]string{"filled price", "fee", "rebate", "premium"}
		out    [4]decimal.Decimal
	)
	for i := range fields {
		d, err := p.quoted(fields[i])
		if err != nil {
			return model.Trade{}, fmt.Errorf("trade %d %s: %w", tr.ID, names[i], err)
		}
		out[i] = d
	}

	return model.Trade{
		ID:            tr.ID,
		ContractID:    tr.ContractID,
		ContractLabel: tr.ContractLabel,
		FilledPrice:   out[0],
		FilledSize:    tr.FilledSize,
		Fee:           out[1],
		Rebate:        out[2],
		Premium:       out[3],
		Created:       tr.Created,
		OrderType:     model.OrderType(tr.OrderType),
		OrderID:       tr.OrderID,
		State:         deref(tr.State),
		StatusType:    tr.StatusType,
		Side:          model.TradeSide(tr.Side),
		ExecutionTime: tr.ExecutionTime,
	}, nil
}

// ToModel converts an APIPosition to model.Position.
func (pos *APIPosition) ToModel(p Precision) (model.Position, error) {
	contract, err := pos.Contract.ToModel(p)
	if err != nil {
		return model.Position{}, fmt.Errorf("position %d: %w", pos.ID, err)
	}

	return model.Position{
		ID:                  pos.ID,
		Size:                pos.Size,
		AssignedSize:        pos.AssignedSize,
		Type:                model.PositionType(pos.Type),
		ExerciseInstruction: deref(pos.ExerciseInstruction),
		HasSettled:          pos.HasSettled,
		Contract:            contract,
	}, nil
}

// convertAll converts every item, stopping at the first failure.
func convertAll[W, M any](items []W, convert func(*W) (M, error)) ([]M, error) {
	out := make([]M, 0, len(items))
	for i := range items {
		m, err := convert(&items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
