package repositories

import (
	"context"
	"fmt"

	"bank-assistant/internal/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface against
// the ledger store
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ListByAccount retrieves every transaction where the account appears as
// either source or destination, most recent first. The descending order is
// part of the contract: the running-balance fold downstream depends on it.
func (r *transactionRepository) ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("from_acct = ? OR to_acct = ?", accountID, accountID).
		Order("timestamp DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// CreateBatch inserts multiple ledger rows in a single database transaction.
// Used only by the development seeding endpoint.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}
