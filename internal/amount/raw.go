package amount

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrMissingAmount is reported for a required amount that is null or absent.
var ErrMissingAmount = errors.New("amount is missing")

// Raw is a monetary value as delivered on the wire, before normalization.
// The zero value holds no amount and fails to rescale.
type Raw struct {
	units    int64
	dec      decimal.Decimal
	explicit bool
	set      bool
}

// Units returns an integer-form amount: n smallest units of the currency.
func Units(n int64) Raw {
	return Raw{units: n, set: true}
}

// FromDecimal returns a decimal-form amount carrying d's own scale.
func FromDecimal(d decimal.Decimal) Raw {
	return Raw{dec: d, explicit: true, set: true}
}

// MustParse returns the decimal-form amount for s and panics if s is not a
// decimal number.
func MustParse(s string) Raw {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return FromDecimal(d)
}

// IsUnits reports whether r is in integer (implicit scale) form.
func (r Raw) IsUnits() bool {
	return !r.explicit
}

// IsSet reports whether r holds an amount.
func (r Raw) IsSet() bool {
	return r.set
}

func (r Raw) String() string {
	if !r.set {
		return "<missing>"
	}
	if !r.explicit {
		return strconv.FormatInt(r.units, 10)
	}
	return r.dec.StringFixed(int32(ScaleOf(r.dec)))
}

// UnmarshalJSON accepts an integer literal (integer form), a quoted decimal
// string or a number with a fraction or exponent (decimal form). null is
// rejected; optional amounts are decoded into a *Raw, which stays nil.
func (r *Raw) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return &DecimalError{Value: "null", Err: ErrMissingAmount}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &DecimalError{Value: string(data), Err: err}
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return &DecimalError{Value: s, Err: err}
		}
		*r = FromDecimal(d)
		return nil
	}

	if bytes.ContainsAny(data, ".eE") {
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return &DecimalError{Value: string(data), Err: err}
		}
		*r = FromDecimal(d)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &DecimalError{Value: string(data), Err: err}
	}
	*r = Units(n)
	return nil
}

// MarshalJSON writes the integer form as a bare integer and the decimal form
// as a quoted string with its scale preserved. An unset amount is null.
func (r Raw) MarshalJSON() ([]byte, error) {
	if !r.set {
		return []byte("null"), nil
	}
	if !r.explicit {
		return []byte(strconv.FormatInt(r.units, 10)), nil
	}
	return []byte(strconv.Quote(r.String())), nil
}

// DecimalError reports a wire value that cannot be represented as a decimal
// amount, e.g. a non-numeric string or an integer overflowing 64 bits.
type DecimalError struct {
	Value string
	Err   error
}

func (e *DecimalError) Error() string {
	return fmt.Sprintf("invalid decimal %q: %v", e.Value, e.Err)
}

func (e *DecimalError) Unwrap() error {
	return e.Err
}
