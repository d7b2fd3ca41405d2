// Package model defines the normalized records returned by the LedgerX client.
//
// Conventions:
//   - Money: decimal.Decimal whose exponent is exactly minus the precision of
//     its currency (USD-quoted prices carry 2 fractional digits)
//   - Optional money: decimal.NullDecimal
//   - Timestamps: time.Time in UTC
//   - Tags: string types with the known values as constants; unknown values
//     are carried through unchanged
package model
