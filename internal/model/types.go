package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/currency"
)

// -----------------------------------------------------------------------------
// Contracts
// -----------------------------------------------------------------------------

// Contract is a tradable instrument: either a DayAheadSwap or an OptionContract.
type Contract interface {
	ContractID() uint64
	ContractLabel() string
	isContract()
}

// ContractInfo holds the fields shared by every contract variant.
type ContractInfo struct {
	ID              uint64
	Name            string // Empty when the API omits it
	MinIncrement    uint32
	DateLive        time.Time
	DateExpires     time.Time
	DateExercise    time.Time
	OpenInterest    uint64
	Multiplier      decimal.Decimal
	Label           string // e.g. "BTC-Mini-31DEC2021-50000-Call"
	Active          bool
	UnderlyingAsset currency.Code
	CollateralAsset currency.Code
}

func (c ContractInfo) ContractID() uint64    { return c.ID }
func (c ContractInfo) ContractLabel() string { return c.Label }

// DayAheadSwap is a next-day delivery swap. It carries no monetary fields.
type DayAheadSwap struct {
	ContractInfo
	IsNextDay bool
}

func (DayAheadSwap) isContract() {}

// OptionType is the right an option grants.
type OptionType string

const (
	OptionCall OptionType = "call"
	OptionPut  OptionType = "put"
)

// OptionContract is a call or put option.
type OptionContract struct {
	ContractInfo
	IsCall      bool
	StrikePrice decimal.Decimal // USD, quote precision
	Type        OptionType
}

func (OptionContract) isContract() {}

// -----------------------------------------------------------------------------
// Market data
// -----------------------------------------------------------------------------

// Ticker is the top of book for one contract.
type Ticker struct {
	Ask       decimal.Decimal // USD, quote precision
	Bid       decimal.Decimal // USD, quote precision
	Volume24h uint32
	LastTrade *TickerTrade // nil when the contract never traded
	Time      time.Time
}

// Spread returns Ask - Bid.
func (t Ticker) Spread() decimal.Decimal {
	return t.Ask.Sub(t.Bid)
}

// TickerTrade is the last trade reported on a ticker.
type TickerTrade struct {
	ID    uint64
	Price decimal.Decimal // USD, quote precision
	Size  uint32
	Time  time.Time
}

// -----------------------------------------------------------------------------
// Account
// -----------------------------------------------------------------------------

// PositionType is the direction of a position.
type PositionType string

const (
	PositionLong  PositionType = "long"
	PositionShort PositionType = "short"
)

// Position is an open or settled holding in one contract.
type Position struct {
	ID                  uint64
	Size                int32
	AssignedSize        int32
	Type                PositionType
	ExerciseInstruction string // Empty when none
	HasSettled          bool
	Contract            Contract
}

// TransactionType is the ledger entry kind (the API's "poly" field).
type TransactionType string

const (
	TransactionFee                 TransactionType = "fee_transaction"
	TransactionPositionLock        TransactionType = "position_lock_transaction"
	TransactionReleasePositionLock TransactionType = "release_position_lock_transaction"
	TransactionPremium             TransactionType = "premium_transaction"
	TransactionDeposit             TransactionType = "deposit_transaction"
)

// TransactionState is the processing state of a ledger entry.
type TransactionState string

const (
	TransactionPending  TransactionState = "pending"
	TransactionCached   TransactionState = "cached"
	TransactionExecuted TransactionState = "executed"
	TransactionFailed   TransactionState = "failed"
)

// Transaction is a ledger entry. All money fields carry Asset's precision.
type Transaction struct {
	ID                     uint64
	Created                time.Time
	LastUpdated            time.Time
	Type                   TransactionType
	Amount                 decimal.Decimal
	DebitAccountFieldName  string
	CreditAccountFieldName string
	SettlementID           *uint64
	State                  TransactionState
	DepositNoticeID        *uint64
	TradeID                *uint64
	GroupID                string
	Asset                  currency.Code
	DebitPreBalance        decimal.NullDecimal
	DebitPostBalance       decimal.NullDecimal
	CreditPreBalance       decimal.NullDecimal
	CreditPostBalance      decimal.NullDecimal
	DebitParticipantName   string
	CreditParticipantName  string
	NetChange              decimal.Decimal // Signed as delivered
}

// OrderType is the kind of order that produced a trade.
type OrderType string

const OrderCustomerLimit OrderType = "customer_limit_order"

// TradeSide is the book side of a trade.
type TradeSide string

const (
	SideBid TradeSide = "bid"
	SideAsk TradeSide = "ask"
)

// Trade is an execution. Money fields are USD at quote precision.
type Trade struct {
	ID            uint64
	ContractID    string
	ContractLabel string
	FilledPrice   decimal.Decimal
	FilledSize    uint32
	Fee           decimal.Decimal
	Rebate        decimal.Decimal
	Premium       decimal.Decimal
	Created       time.Time
	OrderType     OrderType
	OrderID       string
	State         string
	StatusType    string
	Side          TradeSide
	ExecutionTime time.Time
}
