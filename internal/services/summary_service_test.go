package services

import (
	"testing"
	"time"

	"bank-assistant/internal/dto"
	"bank-assistant/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	service   SummaryServiceInterface
	accountID string
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.service = NewSummaryService()
	s.accountID = "acct-10019999"
}

// view builds a normalized transaction the way the fetcher would emit it.
func (s *SummaryServiceTestSuite) view(ts time.Time, amount float64, from, to, category string) dto.TransactionView {
	dec := decimal.NewFromFloat(amount)
	direction := models.TransactionTypeCredit
	if from == s.accountID {
		direction = models.TransactionTypeDebit
	}
	return dto.TransactionView{
		Date:            models.FormatDate(ts),
		Category:        category,
		FormattedAmount: models.FormatCurrency(dec),
		Type:            direction,
		FromAccount:     models.LastFour(from),
		ToAccount:       models.LastFour(to),
		Timestamp:       ts,
		RawFromAccount:  from,
		RawToAccount:    to,
		Amount:          dec,
	}
}

func (s *SummaryServiceTestSuite) sampleTransactions() []dto.TransactionView {
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	return []dto.TransactionView{
		s.view(base.AddDate(0, 0, 9), 50.00, "employer-payroll", s.accountID, "income"),
		s.view(base.AddDate(0, 0, 5), 25.75, s.accountID, "Starbucks Coffee", "dining"),
		s.view(base.AddDate(0, 0, 2), 120.00, s.accountID, "Whole Foods Market", "groceries"),
		s.view(base, 60.00, s.accountID, "Starbucks Coffee", "dining"),
	}
}

func (s *SummaryServiceTestSuite) TestSummarize_Count() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
	})

	s.Equal(4, result.Result)
	s.Equal("count", result.Unit)
}

func (s *SummaryServiceTestSuite) TestSummarize_TotalAmountIsGross() {
	// Credits and debits both add at face value: gross movement, not net.
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeTotalAmount,
	})

	s.Equal("255.75", result.Result)
	s.Equal("USD", result.Unit)
}

func (s *SummaryServiceTestSuite) TestSummarize_TotalAmountWithDirectionFilter() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:       s.accountID,
		SummaryType:     models.SummaryTypeTotalAmount,
		TransactionType: models.TransactionTypeDebit,
	})

	s.Equal("205.75", result.Result)
	s.Equal("USD", result.Unit)
}

func (s *SummaryServiceTestSuite) TestSummarize_List() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeList,
	})

	listed, ok := result.Result.([]dto.TransactionView)
	s.True(ok)
	s.Len(listed, 4)
	s.Equal("Found 4 transaction(s)", result.Message)
}

func (s *SummaryServiceTestSuite) TestSummarize_UnknownKindFallsBackToList() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: "average",
	})

	listed, ok := result.Result.([]dto.TransactionView)
	s.True(ok)
	s.Len(listed, 4)
}

func (s *SummaryServiceTestSuite) TestSummarize_CategoryFilterCaseInsensitive() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
		Category:    "DINING",
	})

	s.Equal(2, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_CategoryFilterSkipsUncategorizedRows() {
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	transactions := []dto.TransactionView{
		s.view(base, 10.00, s.accountID, "Somewhere", "dining"),
		s.view(base, 20.00, s.accountID, "Elsewhere", ""),
	}

	result := s.service.Summarize(transactions, s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
		Category:    "dining",
	})

	// A row with no category cannot be excluded by a category filter.
	s.Equal(2, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_MerchantSubstringMatch() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:    s.accountID,
		SummaryType:  models.SummaryTypeCount,
		MerchantName: "starbucks",
	})

	s.Equal(2, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_MerchantRowsMissingBothFieldsNeverMatch() {
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	transactions := []dto.TransactionView{
		s.view(base, 10.00, "", "", "dining"),
	}

	result := s.service.Summarize(transactions, s.accountID, models.SummaryParams{
		AccountID:    s.accountID,
		SummaryType:  models.SummaryTypeCount,
		MerchantName: "anything",
	})

	s.Equal(0, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_SenderFilter() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
		Sender:      "EMPLOYER-PAYROLL",
	})

	s.Equal(1, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_RecipientFilterSkipsRowsWithoutDestination() {
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	transactions := []dto.TransactionView{
		s.view(base, 10.00, s.accountID, "Starbucks Coffee", "dining"),
		s.view(base, 20.00, s.accountID, "", "fees"),
	}

	result := s.service.Summarize(transactions, s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
		Recipient:   "starbucks coffee",
	})

	// The row with no destination passes through the recipient predicate.
	s.Equal(2, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_DateRangeInclusiveBounds() {
	transactions := []dto.TransactionView{
		s.view(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 10.00, s.accountID, "A", ""),
		s.view(time.Date(2024, time.June, 3, 23, 59, 59, 0, time.UTC), 20.00, s.accountID, "B", ""),
		s.view(time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC), 30.00, s.accountID, "C", ""),
		s.view(time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC), 40.00, s.accountID, "D", ""),
	}

	result := s.service.Summarize(transactions, s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
	})

	s.Equal(2, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_UnparseableDatesIgnored() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
		StartDate:   "June 1st",
		EndDate:     "whenever",
	})

	s.Equal(4, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_FiltersCombineWithAND() {
	result := s.service.Summarize(s.sampleTransactions(), s.accountID, models.SummaryParams{
		AccountID:       s.accountID,
		SummaryType:     models.SummaryTypeCount,
		Category:        "dining",
		MerchantName:    "starbucks",
		StartDate:       "2024-06-05",
		TransactionType: models.TransactionTypeDebit,
	})

	s.Equal(1, result.Result)
}

func (s *SummaryServiceTestSuite) TestSummarize_EmptyResultShapes() {
	result := s.service.Summarize(nil, s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeCount,
	})
	s.Equal(0, result.Result)
	s.Equal("count", result.Unit)

	result = s.service.Summarize(nil, s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeTotalAmount,
	})
	s.Equal("0.00", result.Result)
	s.Equal("USD", result.Unit)

	result = s.service.Summarize(nil, s.accountID, models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeList,
	})
	listed, ok := result.Result.([]dto.TransactionView)
	s.True(ok)
	s.Empty(listed)
}

func (s *SummaryServiceTestSuite) TestSummarize_EmptyResultMessagePreference() {
	params := models.SummaryParams{
		AccountID:    s.accountID,
		SummaryType:  models.SummaryTypeCount,
		Category:     "travel",
		MerchantName: "delta",
		StartDate:    "2024-01-01",
	}
	result := s.service.Summarize(nil, s.accountID, params)
	s.Equal(`No transactions found in category "travel"`, result.Message)

	params.Category = ""
	result = s.service.Summarize(nil, s.accountID, params)
	s.Equal(`No transactions found matching merchant "delta"`, result.Message)

	params.MerchantName = ""
	result = s.service.Summarize(nil, s.accountID, params)
	s.Equal("No transactions found between 2024-01-01 and now", result.Message)

	params.StartDate = ""
	params.EndDate = "2024-02-01"
	result = s.service.Summarize(nil, s.accountID, params)
	s.Equal("No transactions found between the beginning and 2024-02-01", result.Message)

	params.EndDate = ""
	result = s.service.Summarize(nil, s.accountID, params)
	s.Equal("No transactions found for this request", result.Message)
}

func (s *SummaryServiceTestSuite) TestSummarize_Idempotent() {
	transactions := s.sampleTransactions()
	params := models.SummaryParams{
		AccountID:   s.accountID,
		SummaryType: models.SummaryTypeTotalAmount,
		Category:    "dining",
	}

	first := s.service.Summarize(transactions, s.accountID, params)
	second := s.service.Summarize(transactions, s.accountID, params)

	s.Equal(first, second)
	s.Len(transactions, 4)
}
