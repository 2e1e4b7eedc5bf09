package repositories

import (
	"context"

	"bank-assistant/internal/models"
)

// TransactionRepositoryInterface defines the read contract against the
// ledger store. The ledger is never written to by request handling; the
// create methods exist for the development seeding endpoint only.
type TransactionRepositoryInterface interface {
	ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
}

// UserRepositoryInterface defines the read contract against the identity
// store.
type UserRepositoryInterface interface {
	GetByAccountID(ctx context.Context, accountID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
