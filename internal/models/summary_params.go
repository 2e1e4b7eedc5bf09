package models

import (
	"encoding/json"
	"fmt"
)

const (
	SummaryTypeTotalAmount = "total_amount"
	SummaryTypeCount       = "count"
	SummaryTypeList        = "list"
)

// SummaryParams is the structured argument set of the getTransactionSummary
// tool. SummaryType is always required; every other field is an optional
// filter, and all supplied filters are combined with logical AND.
//
// AccountID is never trusted from the model output: the bridge overwrites it
// with the authenticated caller's identifier before execution.
type SummaryParams struct {
	AccountID       string `json:"accountId" validate:"required"`
	SummaryType     string `json:"summaryType" validate:"required,summary_type"`
	Recipient       string `json:"recipient,omitempty"`
	Sender          string `json:"sender,omitempty"`
	StartDate       string `json:"startDate,omitempty" validate:"omitempty,iso_date"`
	EndDate         string `json:"endDate,omitempty" validate:"omitempty,iso_date"`
	Category        string `json:"category,omitempty"`
	TransactionType string `json:"transactionType,omitempty" validate:"omitempty,transaction_type"`
	MerchantName    string `json:"merchantName,omitempty"`
}

// IsValidSummaryType checks if the summary kind is one of the declared enum
// values. Unrecognized kinds are not rejected at runtime; the aggregation
// engine falls back to the list rendering.
func IsValidSummaryType(summaryType string) bool {
	switch summaryType {
	case SummaryTypeTotalAmount, SummaryTypeCount, SummaryTypeList:
		return true
	default:
		return false
	}
}

// SummaryParamsFromArgs decodes a tool-call argument map into SummaryParams.
// The round-trip through JSON tolerates the loosely typed map the reasoning
// service produces.
func SummaryParamsFromArgs(args map[string]any) (SummaryParams, error) {
	var params SummaryParams

	raw, err := json.Marshal(args)
	if err != nil {
		return params, fmt.Errorf("encode tool arguments: %w", err)
	}

	if err := json.Unmarshal(raw, &params); err != nil {
		return params, fmt.Errorf("decode tool arguments: %w", err)
	}

	return params, nil
}
