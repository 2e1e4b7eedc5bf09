package services

import (
	"context"
	"time"

	"bank-assistant/internal/dto"
	"bank-assistant/internal/models"

	"google.golang.org/genai"
)

// StoreProber is the reachability contract a pooled store exposes. Probe
// returning false is a soft signal; the fetcher decides whether it is fatal.
type StoreProber interface {
	Name() string
	Probe(ctx context.Context) bool
}

// TransactionFetcherInterface retrieves and normalizes one account's
// transaction history from the ledger and identity stores.
type TransactionFetcherInterface interface {
	FetchTransactions(ctx context.Context, accountID string) (*dto.TransactionHistory, error)
}

// SummaryServiceInterface is the deterministic filter-and-aggregation engine
// driven by tool-call parameters.
type SummaryServiceInterface interface {
	Summarize(transactions []dto.TransactionView, accountID string, params models.SummaryParams) *dto.SummaryResult
}

// AssistantServiceInterface answers a natural-language question about the
// caller's transactions by orchestrating the reasoning-service exchange.
type AssistantServiceInterface interface {
	Answer(ctx context.Context, accountID, question string) (string, error)
}

// ContentGenerator is the narrow slice of the reasoning-service client the
// bridge depends on. The genai client's Models collection satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordChatRequest(outcome string, duration time.Duration)
	RecordToolExecution(tool, outcome string)
	RecordStoreProbe(store string, reachable bool)
	RecordAssistantTurn(turn, outcome string)
	SetCircuitBreakerState(state CircuitBreakerState)
}

// CircuitBreakerInterface guards calls to the reasoning service
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
}

// TransactionGeneratorInterface produces realistic sample data for the
// development seeding endpoint.
type TransactionGeneratorInterface interface {
	GenerateHistory(accountID string, count, days int) ([]models.Transaction, error)
	GenerateOwner(accountID string) *models.User
}
