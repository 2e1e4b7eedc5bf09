package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionView is the normalized, per-account view of a ledger row.
//
// The unredacted counterparty fields and the parsed decimal values are kept
// for filtering and aggregation but never serialized; only redacted and
// formatted representations leave the process.
type TransactionView struct {
	Date             string `json:"date"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category,omitempty"`
	FormattedAmount  string `json:"amount"`
	Type             string `json:"type"`
	FromAccount      string `json:"from"`
	ToAccount        string `json:"to"`
	FormattedBalance string `json:"runningBalance"`

	Timestamp      time.Time       `json:"-"`
	RawFromAccount string          `json:"-"`
	RawToAccount   string          `json:"-"`
	Amount         decimal.Decimal `json:"-"`
	RunningBalance decimal.Decimal `json:"-"`
}

// TransactionHistory is the result of fetching and normalizing one account's
// ledger rows, ordered by timestamp descending. Built fresh per request and
// never cached.
type TransactionHistory struct {
	AccountOwner  string            `json:"accountOwner"`
	AccountNumber string            `json:"accountNumber"`
	Transactions  []TransactionView `json:"transactions"`
	RetrievedAt   time.Time         `json:"retrievedAt"`
}
