package repositories

import (
	"context"
	"errors"
	"fmt"

	"bank-assistant/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// userRepository implements UserRepositoryInterface against the identity
// store
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{
		db: db,
	}
}

// GetByAccountID retrieves the identity row for an account
func (r *userRepository) GetByAccountID(ctx context.Context, accountID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("accountid = ?", accountID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Create inserts an identity row. Used only by the development seeding
// endpoint.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
