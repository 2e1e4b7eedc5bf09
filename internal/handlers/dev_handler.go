package handlers

import (
	"fmt"
	"net/http"

	"bank-assistant/internal/errors"
	"bank-assistant/internal/repositories"
	"bank-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 100
	maxSeedCount     = 1000
	defaultSeedDays  = 30
	maxSeedDays      = 365
)

// DevHandler handles development-only endpoints
// These endpoints must not be registered outside development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// SeedAccount generates realistic sample data for an account
//
// Method: POST /dev/accounts/:id/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 30, max: 365)
func (h *DevHandler) SeedAccount(c echo.Context) error {
	accountID := c.Param("id")
	if accountID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("Account ID is required"))
	}

	count := getIntParam(c, "count", defaultSeedCount)
	if count < 1 || count > maxSeedCount {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails(fmt.Sprintf("count must be between 1 and %d", maxSeedCount)))
	}

	days := getIntParam(c, "days", defaultSeedDays)
	if days < 1 || days > maxSeedDays {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails(fmt.Sprintf("days must be between 1 and %d", maxSeedDays)))
	}

	ctx := c.Request().Context()

	transactions, err := h.generator.GenerateHistory(accountID, count, days)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return SendSystemError(c, err)
	}

	// An identity row is created only once per account.
	if _, err := h.userRepo.GetByAccountID(ctx, accountID); err != nil {
		owner := h.generator.GenerateOwner(accountID)
		if err := h.userRepo.Create(ctx, owner); err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Sample data generated",
		Data: map[string]int{
			"transactions_created": len(transactions),
		},
	})
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
