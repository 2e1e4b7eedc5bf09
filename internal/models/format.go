package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DisplayDateLayout is the fixed calendar format used in responses.
	DisplayDateLayout = "Jan 02, 2006"

	// AccountMask replaces an account identifier that is too short to redact.
	AccountMask = "****"
)

// FormatDate renders a timestamp in the fixed calendar format.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatCurrency renders a decimal amount with exactly two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatCurrencyString parses a raw amount string and renders it with two
// decimal places; unparseable input renders as "0.00".
func FormatCurrencyString(raw string) string {
	return FormatCurrency(ParseAmount(raw))
}

// LastFour redacts an account identifier down to its last four characters.
// Identifiers shorter than four characters, and missing identifiers, render
// as the fixed mask.
func LastFour(accountID string) string {
	if len(accountID) < 4 {
		return AccountMask
	}
	return accountID[len(accountID)-4:]
}
