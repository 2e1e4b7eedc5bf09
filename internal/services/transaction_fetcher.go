package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bank-assistant/internal/dto"
	"bank-assistant/internal/models"
	"bank-assistant/internal/repositories"

	"github.com/shopspring/decimal"
)

// transactionFetcher retrieves one account's history from the two stores,
// tolerating identity-store failure. The ledger is essential; the identity
// store only enriches the response with an owner name.
type transactionFetcher struct {
	ledger          StoreProber
	identity        StoreProber
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionFetcher creates a new transaction fetcher
func NewTransactionFetcher(
	ledger StoreProber,
	identity StoreProber,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionFetcherInterface {
	return &transactionFetcher{
		ledger:          ledger,
		identity:        identity,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		metrics:         metrics,
	}
}

// FetchTransactions probes both stores concurrently, runs the ledger and
// identity queries concurrently, and normalizes the result. Each query
// settles independently: an identity failure degrades the owner name to
// "Unknown", a ledger failure fails the whole operation.
func (s *transactionFetcher) FetchTransactions(ctx context.Context, accountID string) (*dto.TransactionHistory, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, ErrEmptyAccountID
	}

	ledgerUp, identityUp := s.probeStores(ctx)
	if !ledgerUp {
		slog.Error("ledger store unreachable after retries", "account", models.LastFour(accountID))
		return nil, ErrLedgerUnavailable
	}

	rows, owner, err := s.queryStores(ctx, accountID, identityUp)
	if err != nil {
		return nil, err
	}

	history := &dto.TransactionHistory{
		AccountOwner:  owner,
		AccountNumber: models.LastFour(accountID),
		Transactions:  []dto.TransactionView{},
		RetrievedAt:   time.Now().UTC(),
	}

	if len(rows) == 0 {
		return history, nil
	}

	history.Transactions = normalizeTransactions(rows, accountID)
	return history, nil
}

// probeStores runs both reachability probes concurrently.
func (s *transactionFetcher) probeStores(ctx context.Context) (ledgerUp, identityUp bool) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ledgerUp = s.ledger.Probe(ctx)
		s.metrics.RecordStoreProbe(s.ledger.Name(), ledgerUp)
	}()
	go func() {
		defer wg.Done()
		identityUp = s.identity.Probe(ctx)
		s.metrics.RecordStoreProbe(s.identity.Name(), identityUp)
	}()

	wg.Wait()
	return ledgerUp, identityUp
}

// queryStores issues the ledger and identity queries concurrently. Both
// always run to completion; neither cancels the other. The identity query is
// skipped up front when its probe already failed.
func (s *transactionFetcher) queryStores(ctx context.Context, accountID string, identityUp bool) ([]models.Transaction, string, error) {
	var (
		wg        sync.WaitGroup
		rows      []models.Transaction
		ledgerErr error
		user      *models.User
		userErr   error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, ledgerErr = s.transactionRepo.ListByAccount(ctx, accountID)
	}()

	if identityUp {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, userErr = s.userRepo.GetByAccountID(ctx, accountID)
		}()
	}

	wg.Wait()

	if ledgerErr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrLedgerQuery, ledgerErr)
	}

	owner := models.UnknownOwner
	switch {
	case !identityUp:
		slog.Warn("identity store unreachable, degrading owner name",
			"account", models.LastFour(accountID))
	case userErr != nil:
		if !errors.Is(userErr, repositories.ErrUserNotFound) {
			slog.Warn("identity lookup failed, degrading owner name",
				"account", models.LastFour(accountID),
				"error", userErr)
		}
	default:
		owner = user.DisplayName()
	}

	return rows, owner, nil
}

// normalizeTransactions builds the per-account views in retrieval order
// (timestamp descending) and folds the running balance over that same
// order: each row's signed amount (negative when the account is the source)
// accumulates into the balance attached to the row. Reordering the list
// changes every balance.
func normalizeTransactions(rows []models.Transaction, accountID string) []dto.TransactionView {
	views := make([]dto.TransactionView, 0, len(rows))
	running := decimal.Zero

	for _, row := range rows {
		amount := models.ParseAmount(row.Amount)
		direction := row.DirectionFor(accountID)

		signed := amount
		if direction == models.TransactionTypeDebit {
			signed = amount.Neg()
		}
		running = running.Add(signed)

		views = append(views, dto.TransactionView{
			Date:             models.FormatDate(row.Timestamp),
			Description:      row.Description,
			Category:         row.Category,
			FormattedAmount:  models.FormatCurrency(amount),
			Type:             direction,
			FromAccount:      models.LastFour(row.FromAccount),
			ToAccount:        models.LastFour(row.ToAccount),
			FormattedBalance: models.FormatCurrency(running),
			Timestamp:        row.Timestamp,
			RawFromAccount:   row.FromAccount,
			RawToAccount:     row.ToAccount,
			Amount:           amount,
			RunningBalance:   running,
		})
	}

	return views
}
