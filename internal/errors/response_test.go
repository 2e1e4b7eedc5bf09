package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorResponseTestSuite struct {
	suite.Suite
	traceID string
}

func TestErrorResponseSuite(t *testing.T) {
	suite.Run(t, new(ErrorResponseTestSuite))
}

func (s *ErrorResponseTestSuite) SetupTest() {
	s.traceID = "trace-123"
}

func (s *ErrorResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(StoreLedgerUnavailable, s.traceID)

	s.Equal("STORE_001", resp.Error.Code)
	s.Equal(GetErrorMessage(StoreLedgerUnavailable), resp.Error.Message)
	s.Equal(s.traceID, resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ErrorResponseTestSuite) TestNewErrorResponse_Options() {
	resp := NewErrorResponse(ValidationGeneral, s.traceID,
		WithMessage("custom message"),
		WithDetails("field a", "field b"),
	)

	s.Equal("custom message", resp.Error.Message)
	s.Equal([]string{"field a", "field b"}, resp.Error.Details)
}

func (s *ErrorResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"userId": "is required"}, s.traceID)

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Len(resp.Error.Details, 1)
	s.Contains(resp.Error.Details[0], "userId")
	s.Equal(http.StatusBadRequest, resp.GetHTTPStatus())
}

func (s *ErrorResponseTestSuite) TestWrapSystemError_HidesInternalDetail() {
	internal := errors.New("pq: connection reset by peer")
	resp, returned := WrapSystemError(internal, s.traceID)

	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "pq:")
	s.Equal(internal, returned)
}

func (s *ErrorResponseTestSuite) TestGetHTTPStatus_Mapping() {
	cases := map[ErrorCode]int{
		ValidationGeneral:        http.StatusBadRequest,
		ValidationRequiredField:  http.StatusBadRequest,
		ValidationInvalidDate:    http.StatusBadRequest,
		SystemRateLimitExceeded:  http.StatusTooManyRequests,
		StoreLedgerUnavailable:   http.StatusServiceUnavailable,
		SystemServiceUnavailable: http.StatusServiceUnavailable,
		StoreLedgerQueryFailed:   http.StatusInternalServerError,
		ChatCouldNotUnderstand:   http.StatusInternalServerError,
		ChatNoAnswer:             http.StatusInternalServerError,
		AssistantUpstreamFailure: http.StatusInternalServerError,
		SystemInternalError:      http.StatusInternalServerError,
		ErrorCode("BOGUS_999"):   http.StatusInternalServerError,
	}

	for code, status := range cases {
		s.Equal(status, GetHTTPStatus(code), "code %s", code)
	}
}

func (s *ErrorResponseTestSuite) TestClientServerErrorClassification() {
	s.True(NewErrorResponse(ValidationGeneral, s.traceID).IsClientError())
	s.False(NewErrorResponse(ValidationGeneral, s.traceID).IsServerError())
	s.True(NewErrorResponse(StoreLedgerQueryFailed, s.traceID).IsServerError())
}

func (s *ErrorResponseTestSuite) TestToJSON_RoundTrip() {
	resp := NewErrorResponse(ChatNoAnswer, s.traceID, WithDetails("detail"))

	raw, err := resp.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(raw, &decoded))
	s.Equal(resp.Error.Code, decoded.Error.Code)
	s.Equal(resp.Error.TraceID, decoded.Error.TraceID)
}

func (s *ErrorResponseTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("BOGUS_999")))
}

func (s *ErrorResponseTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(StoreLedgerUnavailable))
	s.True(IsValidErrorCode(ChatUnknownTool))
	s.False(IsValidErrorCode(ErrorCode("BOGUS_999")))
}
