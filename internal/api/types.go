package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/amount"
)

// ListMeta is the metadata block of a list envelope.
type ListMeta struct {
	TotalCount uint32  `json:"total_count"`
	Next       *string `json:"next"`
	Previous   *string `json:"previous"`
	Limit      uint32  `json:"limit"`
	Offset     uint32  `json:"offset"`
}

// ListResponse is the {meta, data} envelope of every list endpoint.
type ListResponse[T any] struct {
	Meta ListMeta `json:"meta"`
	Data []T      `json:"data"`
}

// DataResponse is the {data} envelope of single-resource endpoints.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// Derivative types of APIContract.
const (
	DerivativeDayAheadSwap = "day_ahead_swap"
	DerivativeOption       = "options_contract"
)

// APIContract represents a contract from the LedgerX API. DerivativeType
// selects the variant; fields of the other variant are left zero.
type APIContract struct {
	DerivativeType  string          `json:"derivative_type"`
	ID              uint64          `json:"id"`
	Name            *string         `json:"name"`
	MinIncrement    uint32          `json:"min_increment"`
	DateLive        time.Time       `json:"date_live"`
	DateExpires     time.Time       `json:"date_expires"`
	DateExercise    time.Time       `json:"date_exercise"`
	OpenInterest    uint64          `json:"open_interest"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	Label           string          `json:"label"`
	Active          bool            `json:"active"`
	UnderlyingAsset string          `json:"underlying_asset"`
	CollateralAsset string          `json:"collateral_asset"`

	// Day-ahead swap only
	IsNextDay bool `json:"is_next_day,omitempty"`

	// Option only
	IsCall      bool        `json:"is_call,omitempty"`
	StrikePrice *amount.Raw `json:"strike_price,omitempty"`
	OptionType  string      `json:"type,omitempty"`
}

// TickerResponse from GET /trading/contracts/{id}/ticker
type TickerResponse = DataResponse[APITicker]

// APITicker represents a contract ticker from the LedgerX API.
type APITicker struct {
	Ask       amount.Raw      `json:"ask"`
	Bid       amount.Raw      `json:"bid"`
	Volume24h uint32          `json:"volume_24h"`
	LastTrade *APITickerTrade `json:"last_trade"`
	Time      time.Time       `json:"time"`
}

// APITickerTrade is the last trade embedded in a ticker.
type APITickerTrade struct {
	ID    uint64     `json:"id"`
	Price amount.Raw `json:"price"`
	Size  uint32     `json:"size"`
	Time  time.Time  `json:"time"`
}

// PositionsResponse from GET /trading/positions
type PositionsResponse = ListResponse[APIPosition]

// APIPosition represents a position from the LedgerX API.
type APIPosition struct {
	ID                  uint64      `json:"id"`
	Size                int32       `json:"size"`
	AssignedSize        int32       `json:"assigned_size"`
	Type                string      `json:"type"`
	ExerciseInstruction *string     `json:"exercise_instruction"`
	HasSettled          bool        `json:"has_settled"`
	Contract            APIContract `json:"contract"`
}

// TransactionsResponse from GET /funds/transactions
type TransactionsResponse = ListResponse[APITransaction]

// APITransaction represents a ledger entry from the LedgerX API.
// Amounts count the smallest unit of Asset.
type APITransaction struct {
	ID                     uint64      `json:"id"`
	Created                time.Time   `json:"created"`
	LastUpdated            time.Time   `json:"last_updated"`
	Poly                   string      `json:"poly"`
	Amount                 amount.Raw  `json:"amount"`
	DebitAccountFieldName  string      `json:"debit_account_field_name"`
	CreditAccountFieldName string      `json:"credit_account_field_name"`
	SettlementID           *uint64     `json:"settlement_id"`
	State                  string      `json:"state"`
	DepositNoticeID        *uint64     `json:"deposit_notice_id"`
	TradeID                *uint64     `json:"trade_id"`
	GroupID                *string     `json:"group_id"`
	Asset                  string      `json:"asset"`
	DebitPreBalance        *amount.Raw `json:"debit_pre_balance"`
	DebitPostBalance       *amount.Raw `json:"debit_post_balance"`
	CreditPreBalance       *amount.Raw `json:"credit_pre_balance"`
	CreditPostBalance      *amount.Raw `json:"credit_post_balance"`
	DebitParticipantName   *string     `json:"debit_participant_name"`
	CreditParticipantName  *string     `json:"credit_participant_name"`
	NetChange              amount.Raw  `json:"net_change"`
}

// TradesResponse from GET /trading/trades
type TradesResponse = ListResponse[APITrade]

// APITrade represents an execution from the LedgerX API.
type APITrade struct {
	ID            uint64     `json:"id"`
	ContractID    string     `json:"contract_id"`
	ContractLabel string     `json:"contract_label"`
	FilledPrice   amount.Raw `json:"filled_price"`
	FilledSize    uint32     `json:"filled_size"`
	Fee           amount.Raw `json:"fee"`
	Rebate        amount.Raw `json:"rebate"`
	Premium       amount.Raw `json:"premium"`
	Created       time.Time  `json:"created"`
	OrderType     string     `json:"order_type"`
	OrderID       string     `json:"order_id"`
	State         *string    `json:"state"`
	StatusType    string     `json:"status_type"`
	Side          string     `json:"side"`
	ExecutionTime time.Time  `json:"execution_time"`
}
