package services

import "errors"

var (
	// ErrEmptyAccountID is returned when a fetch is attempted without an
	// account identifier.
	ErrEmptyAccountID = errors.New("account id must not be empty")

	// ErrLedgerUnavailable is returned when the ledger store is unreachable
	// after all probe retries. Maps to 503 at the HTTP boundary.
	ErrLedgerUnavailable = errors.New("ledger store unavailable")

	// ErrLedgerQuery is returned when the ledger store was reachable but the
	// transaction query itself failed.
	ErrLedgerQuery = errors.New("ledger query failed")

	// ErrCouldNotUnderstand is returned when the reasoning service produced
	// neither a tool call nor text for the initial turn.
	ErrCouldNotUnderstand = errors.New("could not understand the question")

	// ErrNoAnswer is returned when the reasoning service produced no text
	// after the tool-result round trip.
	ErrNoAnswer = errors.New("could not generate an answer")

	// ErrAssistantUnavailable is returned when the reasoning-service call
	// failed or the circuit breaker is open.
	ErrAssistantUnavailable = errors.New("reasoning service unavailable")
)
