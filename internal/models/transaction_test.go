package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) TestDirectionFor_AccountIsSource() {
	tx := Transaction{FromAccount: "acct-1001", ToAccount: "acct-2002"}
	s.Equal(TransactionTypeDebit, tx.DirectionFor("acct-1001"))
}

func (s *TransactionTestSuite) TestDirectionFor_AccountIsDestination() {
	tx := Transaction{FromAccount: "acct-2002", ToAccount: "acct-1001"}
	s.Equal(TransactionTypeCredit, tx.DirectionFor("acct-1001"))
}

func (s *TransactionTestSuite) TestDirectionFor_ExactMatchOnly() {
	// Case and whitespace differences do not count as the source account.
	tx := Transaction{FromAccount: "ACCT-1001"}
	s.Equal(TransactionTypeCredit, tx.DirectionFor("acct-1001"))
}

func (s *TransactionTestSuite) TestDirectionFor_MissingFromAccount() {
	tx := Transaction{ToAccount: "acct-1001"}
	s.Equal(TransactionTypeCredit, tx.DirectionFor("acct-1001"))
}

func (s *TransactionTestSuite) TestParseAmount_ValidValues() {
	s.True(decimal.NewFromFloat(125.5).Equal(ParseAmount("125.50")))
	s.True(decimal.NewFromInt(-30).Equal(ParseAmount("-30")))
}

func (s *TransactionTestSuite) TestParseAmount_MalformedCollapsesToZero() {
	s.True(decimal.Zero.Equal(ParseAmount("")))
	s.True(decimal.Zero.Equal(ParseAmount("not-a-number")))
	s.True(decimal.Zero.Equal(ParseAmount("1,000.00")))
}

func (s *TransactionTestSuite) TestIsValidTransactionType() {
	s.True(IsValidTransactionType(TransactionTypeCredit))
	s.True(IsValidTransactionType(TransactionTypeDebit))
	s.False(IsValidTransactionType("transfer"))
	s.False(IsValidTransactionType(""))
}

func (s *TransactionTestSuite) TestIsValidSummaryType() {
	s.True(IsValidSummaryType(SummaryTypeTotalAmount))
	s.True(IsValidSummaryType(SummaryTypeCount))
	s.True(IsValidSummaryType(SummaryTypeList))
	s.False(IsValidSummaryType("average"))
	s.False(IsValidSummaryType(""))
}

func (s *TransactionTestSuite) TestSummaryParamsFromArgs_DecodesLooseMap() {
	params, err := SummaryParamsFromArgs(map[string]any{
		"accountId":       "acct-1001",
		"summaryType":     "count",
		"category":        "groceries",
		"transactionType": "debit",
	})
	s.NoError(err)
	s.Equal("acct-1001", params.AccountID)
	s.Equal(SummaryTypeCount, params.SummaryType)
	s.Equal("groceries", params.Category)
	s.Equal(TransactionTypeDebit, params.TransactionType)
	s.Empty(params.Recipient)
}

func (s *TransactionTestSuite) TestSummaryParamsFromArgs_WrongTypeFails() {
	_, err := SummaryParamsFromArgs(map[string]any{
		"summaryType": 42,
	})
	s.Error(err)
}

func (s *TransactionTestSuite) TestDisplayName() {
	user := &User{FirstName: "Ada", LastName: "Lovelace"}
	s.Equal("Ada Lovelace", user.DisplayName())

	s.Equal("Ada", (&User{FirstName: "Ada"}).DisplayName())
	s.Equal(UnknownOwner, (&User{}).DisplayName())
	s.Equal(UnknownOwner, (&User{FirstName: "  ", LastName: " "}).DisplayName())

	var missing *User
	s.Equal(UnknownOwner, missing.DisplayName())
}
