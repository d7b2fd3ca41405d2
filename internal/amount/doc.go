// Package amount normalizes monetary wire values into exact fixed-point
// decimals.
//
// The API delivers amounts in two forms. An integer literal is already a
// count of the currency's smallest unit, so normalizing it only attaches the
// scale: 1234 at scale 2 is 12.34. A decimal string carries its own scale,
// which may be widened freely and narrowed only when every dropped digit is
// zero. Nothing is ever rounded.
package amount
