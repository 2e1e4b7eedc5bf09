package models

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Transaction represents a raw row in the ledger store. Amounts are kept as
// text because the upstream ledger schema stores them that way; parsing into
// a decimal happens during normalization, never at the storage boundary.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Timestamp   time.Time `gorm:"column:timestamp;not null;index" json:"timestamp"`
	Amount      string    `gorm:"column:amount;type:varchar(32)" json:"amount"`
	FromAccount string    `gorm:"column:from_acct;type:varchar(64);index" json:"from_acct"`
	ToAccount   string    `gorm:"column:to_acct;type:varchar(64);index" json:"to_acct"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Category    string    `gorm:"column:category;type:varchar(50)" json:"category,omitempty"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction direction is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}

// DirectionFor returns the direction of the transaction relative to the given
// account: debit when the account is the source, credit otherwise. The match
// is an exact string comparison against the ledger's from_acct column.
func (t *Transaction) DirectionFor(accountID string) string {
	if t.FromAccount == accountID {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}

// ParseAmount converts a ledger amount string into a decimal. Malformed or
// missing values collapse to zero so an unparseable row never poisons the
// running balance or an aggregate downstream.
func ParseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		slog.Warn("unparseable ledger amount, defaulting to zero",
			"raw_amount", raw,
			"error", err)
		return decimal.Zero
	}

	return amount
}
