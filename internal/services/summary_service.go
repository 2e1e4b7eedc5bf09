package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bank-assistant/internal/dto"
	"bank-assistant/internal/models"

	"github.com/shopspring/decimal"
)

const summaryDateLayout = "2006-01-02"

// summaryService is the deterministic filter-and-aggregation engine. It is a
// pure function of its inputs: no store access, no caching, no hidden state.
type summaryService struct{}

// NewSummaryService creates a new summary service
func NewSummaryService() SummaryServiceInterface {
	return &summaryService{}
}

// Summarize filters the normalized transactions with the AND of every
// supplied parameter and aggregates the survivors according to the summary
// kind. Unrecognized kinds fall back to the list rendering.
func (s *summaryService) Summarize(transactions []dto.TransactionView, accountID string, params models.SummaryParams) *dto.SummaryResult {
	filtered := filterTransactions(transactions, params)

	if len(filtered) == 0 {
		return emptyResult(params)
	}

	switch params.SummaryType {
	case models.SummaryTypeCount:
		return &dto.SummaryResult{Result: len(filtered), Unit: "count"}

	case models.SummaryTypeTotalAmount:
		return &dto.SummaryResult{
			Result: models.FormatCurrency(grossTotal(filtered, accountID)),
			Unit:   "USD",
		}

	case models.SummaryTypeList:
		return listResult(filtered)

	default:
		slog.Warn("unrecognized summary type, falling back to list",
			"summary_type", params.SummaryType)
		return listResult(filtered)
	}
}

// filterTransactions applies every supplied predicate, AND-combined.
// String comparisons are case-insensitive throughout.
func filterTransactions(transactions []dto.TransactionView, params models.SummaryParams) []dto.TransactionView {
	startDate, endDate := parseDateRange(params)

	filtered := make([]dto.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		if !matchesFilters(tx, params, startDate, endDate) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func matchesFilters(tx dto.TransactionView, params models.SummaryParams, startDate, endDate *time.Time) bool {
	// Recipient predicate applies only when the row has a destination.
	if params.Recipient != "" && tx.RawToAccount != "" &&
		!strings.EqualFold(tx.RawToAccount, params.Recipient) {
		return false
	}

	if params.Sender != "" && !strings.EqualFold(tx.RawFromAccount, params.Sender) {
		return false
	}

	if params.MerchantName != "" && !matchesMerchant(tx, params.MerchantName) {
		return false
	}

	if startDate != nil && tx.Timestamp.Before(*startDate) {
		return false
	}
	if endDate != nil && tx.Timestamp.After(*endDate) {
		return false
	}

	if params.Category != "" && tx.Category != "" &&
		!strings.EqualFold(tx.Category, params.Category) {
		return false
	}

	if params.TransactionType != "" && tx.Type != "" &&
		!strings.EqualFold(tx.Type, params.TransactionType) {
		return false
	}

	return true
}

// matchesMerchant reports whether the merchant substring appears in either
// counterparty field. Rows missing both fields never match.
func matchesMerchant(tx dto.TransactionView, merchant string) bool {
	if tx.RawFromAccount == "" && tx.RawToAccount == "" {
		return false
	}

	needle := strings.ToLower(merchant)
	return strings.Contains(strings.ToLower(tx.RawFromAccount), needle) ||
		strings.Contains(strings.ToLower(tx.RawToAccount), needle)
}

// parseDateRange converts the calendar-date parameters into inclusive
// timestamp bounds: the start date from 00:00:00 and the end date through
// 23:59:59.999 of that day. Unparseable dates are ignored.
func parseDateRange(params models.SummaryParams) (start, end *time.Time) {
	if params.StartDate != "" {
		if t, err := time.Parse(summaryDateLayout, params.StartDate); err == nil {
			start = &t
		} else {
			slog.Warn("ignoring unparseable start date", "start_date", params.StartDate)
		}
	}

	if params.EndDate != "" {
		if t, err := time.Parse(summaryDateLayout, params.EndDate); err == nil {
			eod := t.Add(24*time.Hour - time.Millisecond)
			end = &eod
		} else {
			slog.Warn("ignoring unparseable end date", "end_date", params.EndDate)
		}
	}

	return start, end
}

// grossTotal sums each amount at face value whenever either side of the row
// matches the account. Debits are not netted against credits: this is gross
// movement, not a balance. A direction filter upstream restricts which rows
// count.
func grossTotal(transactions []dto.TransactionView, accountID string) decimal.Decimal {
	total := decimal.Zero
	lastFour := models.LastFour(accountID)

	for _, tx := range transactions {
		if tx.RawFromAccount == accountID || tx.RawToAccount == accountID ||
			tx.FromAccount == lastFour || tx.ToAccount == lastFour {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func listResult(filtered []dto.TransactionView) *dto.SummaryResult {
	return &dto.SummaryResult{
		Result:  filtered,
		Message: fmt.Sprintf("Found %d transaction(s)", len(filtered)),
	}
}

// emptyResult builds the "no transactions found" result. The message names
// the most specific supplied filter so the reasoning service can relay a
// useful explanation: category first, then merchant, then date range.
func emptyResult(params models.SummaryParams) *dto.SummaryResult {
	message := "No transactions found for this request"
	switch {
	case params.Category != "":
		message = fmt.Sprintf("No transactions found in category %q", params.Category)
	case params.MerchantName != "":
		message = fmt.Sprintf("No transactions found matching merchant %q", params.MerchantName)
	case params.StartDate != "" || params.EndDate != "":
		start := params.StartDate
		if start == "" {
			start = "the beginning"
		}
		end := params.EndDate
		if end == "" {
			end = "now"
		}
		message = fmt.Sprintf("No transactions found between %s and %s", start, end)
	}

	result := &dto.SummaryResult{Message: message}
	switch params.SummaryType {
	case models.SummaryTypeCount:
		result.Result = 0
		result.Unit = "count"
	case models.SummaryTypeTotalAmount:
		result.Result = models.FormatCurrency(decimal.Zero)
		result.Unit = "USD"
	default:
		result.Result = []dto.TransactionView{}
	}
	return result
}
