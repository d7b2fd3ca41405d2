package currency

import (
	"fmt"
	"maps"
	"slices"
)

// Code identifies an asset (e.g. "USD", "CBTC", "ETH"). Compared by exact equality.
type Code string

// Known assets.
const (
	USD  Code = "USD"
	CBTC Code = "CBTC"
	ETH  Code = "ETH"
)

// MaxPrecision bounds configured precisions to what a 96-bit decimal can carry.
const MaxPrecision = 28

// UnknownCurrencyError is returned for a code with no precision entry.
type UnknownCurrencyError struct {
	Currency Code
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", string(e.Currency))
}

// DefaultPrecisions returns the precision of each known asset as delivered by
// the current API revision. Older revisions used 8 digits for ETH.
func DefaultPrecisions() map[Code]uint32 {
	return map[Code]uint32{
		USD:  2,
		CBTC: 8,
		ETH:  9,
	}
}

// Table maps an asset code to its number of fractional digits.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	digits map[Code]uint32
}

// NewTable builds a table from the given precisions. The map is copied.
func NewTable(precisions map[Code]uint32) *Table {
	return &Table{digits: maps.Clone(precisions)}
}

// DefaultTable returns a table holding DefaultPrecisions.
func DefaultTable() *Table {
	return NewTable(DefaultPrecisions())
}

// With returns a new table with overrides applied on top of t.
func (t *Table) With(overrides map[Code]uint32) *Table {
	digits := maps.Clone(t.digits)
	if digits == nil {
		digits = make(map[Code]uint32, len(overrides))
	}
	maps.Copy(digits, overrides)
	return &Table{digits: digits}
}

// PrecisionOf returns the number of fractional digits for code.
func (t *Table) PrecisionOf(code Code) (uint32, error) {
	digits, ok := t.digits[code]
	if !ok {
		return 0, &UnknownCurrencyError{Currency: code}
	}
	return digits, nil
}

// Codes returns the codes in the table, sorted.
func (t *Table) Codes() []Code {
	return slices.Sorted(maps.Keys(t.digits))
}
