package dto

import "encoding/json"

// SummaryResult is the tagged outcome of the filter-and-aggregation engine.
// Exactly one shape is populated per summary kind:
//
//	count:        Result is an integer, Unit is "count"
//	total_amount: Result is a currency-formatted string, Unit is the currency
//	list:         Result is a []TransactionView (possibly empty) plus Message
//
// An empty filtered set always carries a Message, so a caller (and the
// reasoning service) can distinguish "nothing matched" from a bare zero.
type SummaryResult struct {
	Result  any    `json:"result"`
	Unit    string `json:"unit,omitempty"`
	Message string `json:"message,omitempty"`
}

// AsMap renders the result as the generic map a tool-result message carries.
func (r *SummaryResult) AsMap() map[string]any {
	raw, err := json.Marshal(r)
	if err != nil {
		return map[string]any{"error": "failed to encode summary result"}
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"error": "failed to encode summary result"}
	}
	return out
}
