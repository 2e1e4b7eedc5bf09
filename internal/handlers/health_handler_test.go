package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-assistant/internal/database"
	apierrors "bank-assistant/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	ledger   *database.DB
	identity *database.DB
	handler  *HealthCheckHandler
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ledger = database.SetupLedgerTestDB(s.T())
	s.identity = database.SetupIdentityTestDB(s.T())
	s.handler = NewHealthCheckHandler(s.ledger, s.identity)
}

func (s *HealthHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *HealthHandlerTestSuite) TestHealthCheck_Healthy() {
	c, rec := s.newContext()
	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("healthy", resp["status"])
	s.NotEmpty(resp["time"])
}

func (s *HealthHandlerTestSuite) TestHealthCheck_IdentityDownDegrades() {
	s.NoError(s.identity.Close())

	c, rec := s.newContext()
	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("degraded", resp["status"])
}

func (s *HealthHandlerTestSuite) TestHealthCheck_LedgerDownIsUnavailable() {
	s.NoError(s.ledger.Close())

	c, rec := s.newContext()
	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var resp apierrors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apierrors.SystemServiceUnavailable), resp.Error.Code)
}

func (s *HealthHandlerTestSuite) TestHello() {
	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Hello(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ok", resp["status"])
	s.Equal("bank-assistant", resp["service"])
}
