package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/amount"
	"github.com/rickgao/ledgerx-client/internal/currency"
	"github.com/rickgao/ledgerx-client/internal/model"
)

// checkDecimal fails unless got has exactly the digits and scale of want.
func checkDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if s := got.StringFixed(int32(amount.ScaleOf(got))); s != want {
		t.Errorf("%s = %s, want %s", name, s, want)
	}
}

func decodeJSON[T any](t *testing.T, data string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return v
}

func TestContractToModel(t *testing.T) {
	p := DefaultPrecision()

	t.Run("option with integer strike", func(t *testing.T) {
		raw := decodeJSON[APIContract](t, `{
			"derivative_type": "options_contract",
			"id": 22256341,
			"name": null,
			"label": "BTC-Mini-31DEC2021-50000-Call",
			"active": true,
			"underlying_asset": "CBTC",
			"collateral_asset": "USD",
			"multiplier": "0.01",
			"is_call": true,
			"strike_price": 5000000,
			"type": "call"
		}`)

		c, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opt, ok := c.(model.OptionContract)
		if !ok {
			t.Fatalf("contract is %T, want model.OptionContract", c)
		}
		checkDecimal(t, "StrikePrice", opt.StrikePrice, "50000.00")
		if opt.Type != model.OptionCall || !opt.IsCall {
			t.Errorf("Type = %q, IsCall = %v; want call, true", opt.Type, opt.IsCall)
		}
		if opt.Name != "" {
			t.Errorf("Name = %q, want empty", opt.Name)
		}
		if c.ContractID() != 22256341 {
			t.Errorf("ContractID() = %d, want %d", c.ContractID(), 22256341)
		}
		if c.ContractLabel() != "BTC-Mini-31DEC2021-50000-Call" {
			t.Errorf("ContractLabel() = %q", c.ContractLabel())
		}
		if opt.UnderlyingAsset != currency.CBTC {
			t.Errorf("UnderlyingAsset = %q, want %q", opt.UnderlyingAsset, currency.CBTC)
		}
	})

	t.Run("option with decimal strike is widened", func(t *testing.T) {
		raw := APIContract{DerivativeType: DerivativeOption, StrikePrice: ptr(amount.MustParse("50000.5"))}
		c, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkDecimal(t, "StrikePrice", c.(model.OptionContract).StrikePrice, "50000.50")
	})

	t.Run("option strike losing precision", func(t *testing.T) {
		raw := APIContract{DerivativeType: DerivativeOption, StrikePrice: ptr(amount.MustParse("50000.505"))}
		_, err := raw.ToModel(p)

		var lossErr *amount.PrecisionLossError
		if !errors.As(err, &lossErr) {
			t.Fatalf("expected *amount.PrecisionLossError, got %v", err)
		}
		if lossErr.Scale != 2 {
			t.Errorf("Scale = %d, want 2", lossErr.Scale)
		}
	})

	t.Run("option without strike", func(t *testing.T) {
		raw := APIContract{DerivativeType: DerivativeOption}
		if _, err := raw.ToModel(p); !errors.Is(err, ErrMissingStrike) {
			t.Errorf("err = %v, want ErrMissingStrike", err)
		}
	})

	t.Run("day ahead swap passes through", func(t *testing.T) {
		raw := decodeJSON[APIContract](t, `{
			"derivative_type": "day_ahead_swap",
			"id": 22256342,
			"name": "Next-Day BTC",
			"label": "BTC-22JAN2022-NextDay",
			"multiplier": "0.01",
			"is_next_day": true
		}`)

		c, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		swap, ok := c.(model.DayAheadSwap)
		if !ok {
			t.Fatalf("contract is %T, want model.DayAheadSwap", c)
		}
		if !swap.IsNextDay || swap.Name != "Next-Day BTC" {
			t.Errorf("swap = %+v", swap)
		}
		if !swap.Multiplier.Equal(decimal.RequireFromString("0.01")) {
			t.Errorf("Multiplier = %s, want 0.01", swap.Multiplier)
		}
	})

	t.Run("unknown derivative type", func(t *testing.T) {
		raw := APIContract{DerivativeType: "future_contract", ID: 9}
		if _, err := raw.ToModel(p); !errors.Is(err, ErrUnknownDerivativeType) {
			t.Errorf("err = %v, want ErrUnknownDerivativeType", err)
		}
	})

	t.Run("quote currency missing from table", func(t *testing.T) {
		bad := Precision{Table: currency.DefaultTable(), Quote: "EUR"}
		raw := APIContract{DerivativeType: DerivativeOption, StrikePrice: ptr(amount.Units(100))}

		var unknown *currency.UnknownCurrencyError
		if _, err := raw.ToModel(bad); !errors.As(err, &unknown) {
			t.Errorf("err = %v, want *currency.UnknownCurrencyError", err)
		}
	})
}

func TestTickerToModel(t *testing.T) {
	p := DefaultPrecision()

	t.Run("integer and decimal forms", func(t *testing.T) {
		raw := decodeJSON[APITicker](t, `{
			"ask": 10250,
			"bid": "101.5",
			"volume_24h": 12,
			"last_trade": {"id": 3, "price": 10200, "size": 1, "time": "2022-01-21T15:00:00Z"},
			"time": "2022-01-21T15:01:00Z"
		}`)

		ticker, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkDecimal(t, "Ask", ticker.Ask, "102.50")
		checkDecimal(t, "Bid", ticker.Bid, "101.50")
		checkDecimal(t, "Spread", ticker.Spread(), "1.00")
		if ticker.LastTrade == nil {
			t.Fatal("LastTrade = nil")
		}
		checkDecimal(t, "LastTrade.Price", ticker.LastTrade.Price, "102.00")
		if ticker.Volume24h != 12 {
			t.Errorf("Volume24h = %d, want 12", ticker.Volume24h)
		}
	})

	t.Run("no last trade", func(t *testing.T) {
		raw := decodeJSON[APITicker](t, `{"ask": 1, "bid": 0, "last_trade": null}`)
		ticker, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticker.LastTrade != nil {
			t.Errorf("LastTrade = %+v, want nil", ticker.LastTrade)
		}
		checkDecimal(t, "Ask", ticker.Ask, "0.01")
		checkDecimal(t, "Bid", ticker.Bid, "0.00")
	})

	t.Run("null ask fails to decode", func(t *testing.T) {
		var raw APITicker
		err := json.Unmarshal([]byte(`{"ask": null, "bid": "1.5"}`), &raw)

		var decErr *amount.DecimalError
		if !errors.As(err, &decErr) {
			t.Fatalf("err = %v, want *amount.DecimalError", err)
		}
		if !errors.Is(err, amount.ErrMissingAmount) {
			t.Errorf("err = %v, want ErrMissingAmount", err)
		}
	})

	t.Run("missing ask fails to convert", func(t *testing.T) {
		raw := decodeJSON[APITicker](t, `{"bid": "1.5"}`)
		_, err := raw.ToModel(p)

		var decErr *amount.DecimalError
		if !errors.As(err, &decErr) {
			t.Fatalf("err = %v, want *amount.DecimalError", err)
		}
		if !errors.Is(err, amount.ErrMissingAmount) {
			t.Errorf("err = %v, want ErrMissingAmount", err)
		}
	})

	t.Run("error names the field", func(t *testing.T) {
		raw := APITicker{Ask: amount.Units(1), Bid: amount.MustParse("1.001")}
		_, err := raw.ToModel(p)
		if err == nil || err.Error() != "ticker bid: rescaling 1.001 to 2 decimal places loses precision" {
			t.Errorf("err = %v", err)
		}
	})
}

func TestTransactionToModel(t *testing.T) {
	p := DefaultPrecision()

	t.Run("uses the asset precision", func(t *testing.T) {
		raw := decodeJSON[APITransaction](t, `{
			"id": 1001,
			"poly": "deposit_transaction",
			"amount": 150000000,
			"state": "executed",
			"asset": "CBTC",
			"group_id": null,
			"debit_pre_balance": null,
			"debit_post_balance": null,
			"credit_pre_balance": 0,
			"credit_post_balance": "1.5",
			"credit_participant_name": "alice",
			"net_change": 150000000
		}`)

		tx, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkDecimal(t, "Amount", tx.Amount, "1.50000000")
		checkDecimal(t, "NetChange", tx.NetChange, "1.50000000")
		if tx.DebitPreBalance.Valid || tx.DebitPostBalance.Valid {
			t.Error("debit balances should be absent")
		}
		if !tx.CreditPreBalance.Valid || !tx.CreditPostBalance.Valid {
			t.Fatal("credit balances should be present")
		}
		checkDecimal(t, "CreditPreBalance", tx.CreditPreBalance.Decimal, "0.00000000")
		checkDecimal(t, "CreditPostBalance", tx.CreditPostBalance.Decimal, "1.50000000")
		if tx.Type != model.TransactionDeposit || tx.State != model.TransactionExecuted {
			t.Errorf("Type = %q, State = %q", tx.Type, tx.State)
		}
		if tx.Asset != currency.CBTC || tx.CreditParticipantName != "alice" || tx.GroupID != "" {
			t.Errorf("tx = %+v", tx)
		}
	})

	t.Run("negative net change keeps its sign", func(t *testing.T) {
		raw := APITransaction{Asset: "USD", Amount: amount.Units(200), NetChange: amount.Units(-200)}
		tx, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkDecimal(t, "NetChange", tx.NetChange, "-2.00")
	})

	t.Run("missing net change", func(t *testing.T) {
		raw := decodeJSON[APITransaction](t, `{"id": 1, "asset": "USD", "amount": 100}`)
		_, err := raw.ToModel(p)

		var decErr *amount.DecimalError
		if !errors.As(err, &decErr) {
			t.Fatalf("err = %v, want *amount.DecimalError", err)
		}
		if !errors.Is(err, amount.ErrMissingAmount) {
			t.Errorf("err = %v, want ErrMissingAmount", err)
		}
	})

	t.Run("null balance stays absent", func(t *testing.T) {
		raw := decodeJSON[APITransaction](t, `{"asset": "USD", "amount": 1, "net_change": 1, "debit_pre_balance": null}`)
		tx, err := raw.ToModel(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.DebitPreBalance.Valid {
			t.Error("DebitPreBalance should be absent")
		}
	})

	t.Run("unknown asset", func(t *testing.T) {
		raw := APITransaction{ID: 5, Asset: "DOGE"}
		_, err := raw.ToModel(p)

		var unknown *currency.UnknownCurrencyError
		if !errors.As(err, &unknown) {
			t.Fatalf("err = %v, want *currency.UnknownCurrencyError", err)
		}
		if unknown.Currency != "DOGE" {
			t.Errorf("Currency = %q, want DOGE", unknown.Currency)
		}
	})

	t.Run("balance losing precision", func(t *testing.T) {
		raw := APITransaction{
			Asset:             "USD",
			Amount:            amount.Units(1),
			NetChange:         amount.Units(1),
			CreditPostBalance: ptr(amount.MustParse("1.234")),
		}
		var lossErr *amount.PrecisionLossError
		if _, err := raw.ToModel(p); !errors.As(err, &lossErr) {
			t.Errorf("err = %v, want *amount.PrecisionLossError", err)
		}
	})

	t.Run("configured precision override", func(t *testing.T) {
		table := currency.DefaultTable().With(map[currency.Code]uint32{currency.ETH: 18})
		raw := APITransaction{Asset: "ETH", Amount: amount.MustParse("0.5"), NetChange: amount.MustParse("0.5")}
		tx, err := raw.ToModel(Precision{Table: table, Quote: currency.USD})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := amount.ScaleOf(tx.Amount); got != 18 {
			t.Errorf("scale = %d, want 18", got)
		}
	})
}

func TestTradeToModel(t *testing.T) {
	raw := decodeJSON[APITrade](t, `{
		"id": 77,
		"contract_id": "22256341",
		"contract_label": "BTC-Mini-31DEC2021-50000-Call",
		"filled_price": 12500,
		"filled_size": 2,
		"fee": "0.5",
		"rebate": 0,
		"premium": 25000,
		"order_type": "customer_limit_order",
		"order_id": "abc",
		"state": null,
		"status_type": "filled",
		"side": "bid"
	}`)

	trade, err := raw.ToModel(DefaultPrecision())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkDecimal(t, "FilledPrice", trade.FilledPrice, "125.00")
	checkDecimal(t, "Fee", trade.Fee, "0.50")
	checkDecimal(t, "Rebate", trade.Rebate, "0.00")
	checkDecimal(t, "Premium", trade.Premium, "250.00")
	if trade.Side != model.SideBid || trade.OrderType != model.OrderCustomerLimit {
		t.Errorf("Side = %q, OrderType = %q", trade.Side, trade.OrderType)
	}
	if trade.State != "" {
		t.Errorf("State = %q, want empty", trade.State)
	}

	t.Run("fee losing precision", func(t *testing.T) {
		bad := APITrade{ID: 1, FilledPrice: amount.Units(100), Fee: amount.MustParse("0.125")}
		var lossErr *amount.PrecisionLossError
		if _, err := bad.ToModel(DefaultPrecision()); !errors.As(err, &lossErr) {
			t.Errorf("err = %v, want *amount.PrecisionLossError", err)
		}
	})
}

func TestPositionToModel(t *testing.T) {
	raw := decodeJSON[APIPosition](t, `{
		"id": 5,
		"size": -3,
		"assigned_size": 0,
		"type": "short",
		"exercise_instruction": null,
		"has_settled": false,
		"contract": {"derivative_type": "options_contract", "id": 9, "strike_price": 4000000, "type": "put"}
	}`)

	pos, err := raw.ToModel(DefaultPrecision())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Size != -3 || pos.Type != model.PositionShort {
		t.Errorf("Size = %d, Type = %q", pos.Size, pos.Type)
	}
	opt, ok := pos.Contract.(model.OptionContract)
	if !ok {
		t.Fatalf("contract is %T", pos.Contract)
	}
	checkDecimal(t, "StrikePrice", opt.StrikePrice, "40000.00")
	if opt.Type != model.OptionPut {
		t.Errorf("Type = %q, want put", opt.Type)
	}

	t.Run("bad contract fails the position", func(t *testing.T) {
		bad := APIPosition{ID: 6, Contract: APIContract{DerivativeType: "swap"}}
		if _, err := bad.ToModel(DefaultPrecision()); !errors.Is(err, ErrUnknownDerivativeType) {
			t.Errorf("err = %v, want ErrUnknownDerivativeType", err)
		}
	})
}

func ptr[T any](v T) *T {
	return &v
}
