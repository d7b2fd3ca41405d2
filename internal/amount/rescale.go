package amount

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/currency"
)

// ErrScaleOutOfRange is reported for a target scale above currency.MaxPrecision.
var ErrScaleOutOfRange = fmt.Errorf("scale exceeds %d digits", currency.MaxPrecision)

// PrecisionLossError reports a narrowing rescale that would drop nonzero digits.
type PrecisionLossError struct {
	Value string
	Scale uint32
}

func (e *PrecisionLossError) Error() string {
	return fmt.Sprintf("rescaling %s to %d decimal places loses precision", e.Value, e.Scale)
}

// Rescale normalizes raw to a decimal whose exponent is exactly -scale.
// An unset raw is a *DecimalError wrapping ErrMissingAmount.
func Rescale(raw Raw, scale uint32) (decimal.Decimal, error) {
	if !raw.set {
		return decimal.Decimal{}, &DecimalError{Value: raw.String(), Err: ErrMissingAmount}
	}
	if scale > currency.MaxPrecision {
		return decimal.Decimal{}, &DecimalError{Value: raw.String(), Err: ErrScaleOutOfRange}
	}
	if !raw.explicit {
		return decimal.New(raw.units, -int32(scale)), nil
	}

	d := raw.dec
	coef := d.Coefficient()
	exp := d.Exponent()
	if exp > 0 {
		coef.Mul(coef, pow10(uint32(exp)))
		exp = 0
	}

	current := uint32(-exp)
	switch {
	case current == scale:
	case current < scale:
		coef.Mul(coef, pow10(scale-current))
	default:
		var rem big.Int
		coef.QuoRem(coef, pow10(current-scale), &rem)
		if rem.Sign() != 0 {
			return decimal.Decimal{}, &PrecisionLossError{Value: raw.String(), Scale: scale}
		}
	}

	return decimal.NewFromBigInt(coef, -int32(scale)), nil
}

// RescaleOptional normalizes an optional amount. A nil raw yields an invalid
// NullDecimal.
func RescaleOptional(raw *Raw, scale uint32) (decimal.NullDecimal, error) {
	if raw == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := Rescale(*raw, scale)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// ScaleOf returns the number of fractional digits d carries.
func ScaleOf(d decimal.Decimal) uint32 {
	if exp := d.Exponent(); exp < 0 {
		return uint32(-exp)
	}
	return 0
}

func pow10(n uint32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
