package services

import (
	"fmt"
	"math/rand"
	"time"

	"bank-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

// transactionGenerator produces sample ledger rows for development
// environments. The generated data exercises every filter the summary
// engine supports: categories, both directions, merchant counterparties,
// and spread-out timestamps.
type transactionGenerator struct {
	rng *rand.Rand
}

var sampleCategories = []string{
	"GROCERIES",
	"DINING",
	"TRANSPORTATION",
	"ENTERTAINMENT",
	"UTILITIES",
	"INCOME",
	"FEES",
	"OTHER",
}

// NewTransactionGenerator creates a new transaction generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &transactionGenerator{
		rng: rand.New(source),
	}
}

// GenerateHistory builds count ledger rows involving the account, spread
// over the past days, newest first.
func (g *transactionGenerator) GenerateHistory(accountID string, count, days int) ([]models.Transaction, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}

	now := time.Now().UTC()
	window := time.Duration(days) * 24 * time.Hour

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		timestamp := now.Add(-time.Duration(g.rng.Int63n(int64(window))))
		amount := fmt.Sprintf("%.2f", gofakeit.Price(1, 2500))
		counterparty := gofakeit.Company()
		category := sampleCategories[g.rng.Intn(len(sampleCategories))]

		tx := models.Transaction{
			Timestamp:   timestamp,
			Amount:      amount,
			Description: gofakeit.ProductName(),
			Category:    category,
		}

		// Roughly two thirds of rows are outgoing payments.
		if g.rng.Intn(3) < 2 {
			tx.FromAccount = accountID
			tx.ToAccount = counterparty
		} else {
			tx.FromAccount = counterparty
			tx.ToAccount = accountID
			tx.Category = "INCOME"
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// GenerateOwner builds an identity row for the account.
func (g *transactionGenerator) GenerateOwner(accountID string) *models.User {
	return &models.User{
		AccountID: accountID,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
}
