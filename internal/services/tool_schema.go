package services

import "google.golang.org/genai"

// ToolGetTransactionSummary is the single function declared to the reasoning
// service.
const ToolGetTransactionSummary = "getTransactionSummary"

const systemInstruction = "You are a banking assistant. You answer questions " +
	"strictly about the user's own transaction history. For any question about " +
	"transactions, amounts, balances, merchants, or dates you MUST call the " +
	"getTransactionSummary tool and base your answer only on its result. Never " +
	"invent transactions or amounts. If the tool reports that no transactions " +
	"matched, say so plainly. Answer in clear, concise natural language."

// transactionSummaryTool declares the getTransactionSummary function schema.
// accountId and summaryType are required; every other field is an optional
// filter the model may supply.
func transactionSummaryTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name: ToolGetTransactionSummary,
				Description: "Look up the user's transaction history and return a count, " +
					"a total amount, or a filtered list of transactions.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"accountId": {
							Type:        genai.TypeString,
							Description: "The account identifier of the user asking the question.",
						},
						"summaryType": {
							Type:        genai.TypeString,
							Enum:        []string{"total_amount", "count", "list"},
							Description: "The kind of summary to compute.",
						},
						"recipient": {
							Type:        genai.TypeString,
							Description: "Only include transactions sent to this counterparty.",
						},
						"sender": {
							Type:        genai.TypeString,
							Description: "Only include transactions received from this counterparty.",
						},
						"startDate": {
							Type:        genai.TypeString,
							Description: "Inclusive start of the date range, ISO format YYYY-MM-DD.",
						},
						"endDate": {
							Type:        genai.TypeString,
							Description: "Inclusive end of the date range, ISO format YYYY-MM-DD.",
						},
						"category": {
							Type:        genai.TypeString,
							Description: "Only include transactions in this category.",
						},
						"transactionType": {
							Type:        genai.TypeString,
							Enum:        []string{"credit", "debit"},
							Description: "Only include transactions with this direction.",
						},
						"merchantName": {
							Type:        genai.TypeString,
							Description: "Free-text merchant name matched against either counterparty.",
						},
					},
					Required: []string{"accountId", "summaryType"},
				},
			},
		},
	}
}
