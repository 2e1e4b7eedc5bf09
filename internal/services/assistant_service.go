package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bank-assistant/internal/models"

	"google.golang.org/genai"
)

// exchangeState tracks the two-turn exchange with the reasoning service.
type exchangeState int

const (
	stateAwaitInitial exchangeState = iota
	stateExecutingTool
	stateAwaitFinal
	stateDone
)

// assistantService bridges a user question to the reasoning service. One
// request is at most a two-turn exchange: the question goes out with the
// declared tool schema; if the model asks to invoke the tool, the lookup and
// aggregation run locally and the result goes back for the final answer.
type assistantService struct {
	generator  ContentGenerator
	fetcher    TransactionFetcherInterface
	summarizer SummaryServiceInterface
	breaker    CircuitBreakerInterface
	metrics    MetricsRecorderInterface
	model      string
}

// NewAssistantService creates a new assistant service
func NewAssistantService(
	generator ContentGenerator,
	fetcher TransactionFetcherInterface,
	summarizer SummaryServiceInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	model string,
) AssistantServiceInterface {
	return &assistantService{
		generator:  generator,
		fetcher:    fetcher,
		summarizer: summarizer,
		breaker:    breaker,
		metrics:    metrics,
		model:      model,
	}
}

// Answer runs the exchange state machine:
//
//	AWAIT_INITIAL -> (tool requested) -> EXECUTING_TOOL -> AWAIT_FINAL -> DONE
//	AWAIT_INITIAL -> (direct text)    -> DONE
//
// The accountID is the authenticated caller's identifier; any account
// argument the model supplies is discarded in its favor.
func (s *assistantService) Answer(ctx context.Context, accountID, question string) (string, error) {
	if s.breaker.IsOpen() {
		s.metrics.SetCircuitBreakerState(s.breaker.GetState())
		return "", fmt.Errorf("%w: circuit breaker open", ErrAssistantUnavailable)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Tools: []*genai.Tool{transactionSummaryTool()},
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: question}},
		},
	}

	var (
		answer string
		call   *genai.FunctionCall
	)

	state := stateAwaitInitial
	for state != stateDone {
		switch state {
		case stateAwaitInitial:
			resp, err := s.generate(ctx, "initial", contents, config)
			if err != nil {
				return "", err
			}

			calls := resp.FunctionCalls()
			if len(calls) > 0 {
				call = calls[0]
				if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
					contents = append(contents, resp.Candidates[0].Content)
				}
				state = stateExecutingTool
				break
			}

			answer = resp.Text()
			if answer == "" {
				return "", ErrCouldNotUnderstand
			}
			state = stateDone

		case stateExecutingTool:
			payload, err := s.executeTool(ctx, accountID, call)
			if err != nil {
				return "", err
			}

			contents = append(contents, &genai.Content{
				Role: "user",
				Parts: []*genai.Part{
					{
						FunctionResponse: &genai.FunctionResponse{
							Name:     call.Name,
							Response: payload,
						},
					},
				},
			})
			state = stateAwaitFinal

		case stateAwaitFinal:
			resp, err := s.generate(ctx, "final", contents, config)
			if err != nil {
				return "", err
			}

			answer = resp.Text()
			if answer == "" {
				return "", ErrNoAnswer
			}
			state = stateDone
		}
	}

	return answer, nil
}

// generate performs one reasoning-service turn and keeps the circuit
// breaker informed.
func (s *assistantService) generate(ctx context.Context, turn string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := s.generator.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.RecordAssistantTurn(turn, "error")
		s.metrics.SetCircuitBreakerState(s.breaker.GetState())
		slog.Error("reasoning service call failed", "turn", turn, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	s.breaker.RecordSuccess()
	s.metrics.RecordAssistantTurn(turn, "success")
	s.metrics.SetCircuitBreakerState(s.breaker.GetState())
	return resp, nil
}

// executeTool runs the requested tool locally and builds the tool-result
// payload. An unrecognized tool name is reported back to the model as an
// error payload rather than aborting the exchange; the model may still
// recover with a text explanation. Ledger failures propagate: the caller
// must see them, not the model.
func (s *assistantService) executeTool(ctx context.Context, accountID string, call *genai.FunctionCall) (map[string]any, error) {
	if call.Name != ToolGetTransactionSummary {
		slog.Warn("reasoning service requested unknown tool", "tool", call.Name)
		s.metrics.RecordToolExecution(call.Name, "unknown")
		return map[string]any{
			"error": fmt.Sprintf("tool %q is not implemented", call.Name),
		}, nil
	}

	params, err := models.SummaryParamsFromArgs(call.Args)
	if err != nil {
		slog.Warn("tool arguments could not be decoded", "error", err)
		s.metrics.RecordToolExecution(call.Name, "bad_args")
		return map[string]any{
			"error": "tool arguments could not be decoded",
		}, nil
	}

	// Never trust the model with data scoping.
	params.AccountID = accountID

	history, err := s.fetcher.FetchTransactions(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrLedgerUnavailable) || errors.Is(err, ErrLedgerQuery) {
			s.metrics.RecordToolExecution(call.Name, "store_error")
			return nil, err
		}
		s.metrics.RecordToolExecution(call.Name, "error")
		return map[string]any{
			"error": "transaction lookup failed",
		}, nil
	}

	result := s.summarizer.Summarize(history.Transactions, accountID, params)
	s.metrics.RecordToolExecution(call.Name, "success")

	payload := result.AsMap()
	payload["accountOwner"] = history.AccountOwner
	payload["accountNumber"] = history.AccountNumber
	return payload, nil
}
