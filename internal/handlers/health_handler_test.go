package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budgethero/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerSuite struct {
	suite.Suite
	db   *database.DB
	echo *echo.Echo
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerSuite))
}

func (s *HealthCheckHandlerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
}

func (s *HealthCheckHandlerSuite) TestHealthy() {
	handler := NewHealthCheckHandler(s.db.DB, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("no-store", rec.Header().Get("Cache-Control"))

	var response HealthResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("healthy", response.Status)
	s.Equal("1.2.3", response.Version)
	s.Equal("ok", response.Checks["database"])
}

func (s *HealthCheckHandlerSuite) TestDatabaseDown() {
	handler := NewHealthCheckHandler(s.db.DB, "")
	s.Require().NoError(s.db.Close())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	s.NoError(handler.HealthCheck(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	response := decodeError(rec.Body.Bytes())
	s.Equal("SYSTEM_003", response.Error.Code)
	s.Equal("trace-123", response.Error.TraceID)
}
