// Package currency holds the fractional-digit precision of every asset the
// venue settles in.
//
// Precision is looked up, never assumed: a code missing from the table is an
// error because a guessed scale would silently misstate money.
package currency
