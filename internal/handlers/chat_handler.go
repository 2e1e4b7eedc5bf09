package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bank-assistant/internal/dto"
	"bank-assistant/internal/errors"
	"bank-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles the natural-language question endpoint
type ChatHandler struct {
	assistant services.AssistantServiceInterface
	metrics   services.MetricsRecorderInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	assistant services.AssistantServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
		metrics:   metrics,
	}
}

// Chat answers a natural-language question about the caller's transactions
//
// Method: POST /chat
// Body: {"userId": "...", "question": "..."}
//
// Success Response: 200 OK {"answer": "..."}
//
// Error Responses:
//   - 400: Missing or blank userId/question
//   - 500: Reasoning-service failure or unusable model output
//   - 503: Ledger store unavailable
func (h *ChatHandler) Chat(c echo.Context) error {
	started := time.Now()

	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.RecordChatRequest("invalid", time.Since(started))
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Question = strings.TrimSpace(req.Question)

	if err := c.Validate(&req); err != nil {
		h.metrics.RecordChatRequest("invalid", time.Since(started))
		return err
	}

	answer, err := h.assistant.Answer(c.Request().Context(), req.UserID, req.Question)
	if err != nil {
		return h.sendAssistantError(c, err, started)
	}

	h.metrics.RecordChatRequest("success", time.Since(started))
	return c.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}

// sendAssistantError translates service errors into the caller-facing
// taxonomy. Full detail is logged server-side; the client only sees the
// generic message for the code.
func (h *ChatHandler) sendAssistantError(c echo.Context, err error, started time.Time) error {
	traceID := getTraceID(c)

	var code errors.ErrorCode
	var outcome string
	switch {
	case stderrors.Is(err, services.ErrEmptyAccountID):
		code, outcome = errors.ValidationRequiredField, "invalid"
	case stderrors.Is(err, services.ErrLedgerUnavailable):
		code, outcome = errors.StoreLedgerUnavailable, "store_unavailable"
	case stderrors.Is(err, services.ErrLedgerQuery):
		code, outcome = errors.StoreLedgerQueryFailed, "store_error"
	case stderrors.Is(err, services.ErrCouldNotUnderstand):
		code, outcome = errors.ChatCouldNotUnderstand, "not_understood"
	case stderrors.Is(err, services.ErrNoAnswer):
		code, outcome = errors.ChatNoAnswer, "no_answer"
	case stderrors.Is(err, services.ErrAssistantUnavailable):
		code, outcome = errors.AssistantUpstreamFailure, "upstream_error"
	default:
		h.metrics.RecordChatRequest("error", time.Since(started))
		slog.Error("chat request failed with unexpected error",
			"trace_id", traceID,
			"error", err)
		return SendSystemError(c, err)
	}

	h.metrics.RecordChatRequest(outcome, time.Since(started))
	slog.Error("chat request failed",
		"trace_id", traceID,
		"error_code", string(code),
		"error", err)
	return SendError(c, code)
}
