package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgethero/internal/dto"
	"budgethero/internal/models"
	"budgethero/internal/plaid"
	"budgethero/internal/repositories"
	"budgethero/internal/services"
	"budgethero/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PlaidHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	syncService *service_mocks.MockSyncServiceInterface
	handler     *PlaidHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func TestPlaidHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlaidHandlerSuite))
}

func (s *PlaidHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.syncService = service_mocks.NewMockSyncServiceInterface(s.ctrl)
	s.handler = NewPlaidHandler(s.syncService, nil)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *PlaidHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlaidHandlerSuite) newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *PlaidHandlerSuite) TestCreateLinkToken() {
	token := "link-sandbox-" + gofakeit.UUID()
	s.syncService.EXPECT().CreateLinkToken(gomock.Any(), s.userID).Return(token, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/link-token", nil)

	s.NoError(s.handler.CreateLinkToken(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.LinkTokenResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(token, response.LinkToken)
}

func (s *PlaidHandlerSuite) TestCreateLinkToken_ServiceErrors() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"disabled", services.ErrAggregatorDisabled, http.StatusServiceUnavailable, "SYNC_001"},
		{"breaker open", services.ErrCircuitBreakerOpen, http.StatusServiceUnavailable, "SYNC_002"},
		{"rate limited", fmt.Errorf("%w: %w", services.ErrAggregatorRequest, plaid.ErrRateLimit), http.StatusServiceUnavailable, "SYNC_002"},
		{"upstream error", fmt.Errorf("%w: INVALID_FIELD", services.ErrAggregatorRequest), http.StatusBadGateway, "SYNC_004"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.syncService.EXPECT().CreateLinkToken(gomock.Any(), s.userID).Return("", tc.err)

			c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/link-token", nil)

			s.NoError(s.handler.CreateLinkToken(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, decodeError(rec.Body.Bytes()).Error.Code)
		})
	}
}

func (s *PlaidHandlerSuite) TestExchangePublicToken() {
	req := dto.ExchangeTokenRequest{PublicToken: "public-sandbox-123", InstitutionName: "First Platypus Bank"}
	item := &models.PlaidItem{
		ID:              uuid.New(),
		UserID:          s.userID,
		ItemID:          "item-" + gofakeit.LetterN(12),
		InstitutionName: req.InstitutionName,
		AccessToken:     []byte("sealed"),
		Status:          models.PlaidItemStatusActive,
	}

	s.syncService.EXPECT().
		ExchangePublicToken(gomock.Any(), s.userID, &req).
		Return(item, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/exchange", req)

	s.NoError(s.handler.ExchangePublicToken(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.NotContains(rec.Body.String(), "sealed")
	s.NotContains(rec.Body.String(), "access_token")
}

func (s *PlaidHandlerSuite) TestExchangePublicToken_MissingToken() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/exchange", dto.ExchangeTokenRequest{})

	s.NoError(s.handler.ExchangePublicToken(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(rec.Body.Bytes()).Error.Details, "publicToken: is required")
}

func (s *PlaidHandlerSuite) TestSyncItem() {
	itemID := uuid.New()
	result := &models.SyncResult{ItemID: itemID, Fetched: 12, Imported: 9, Duplicates: 3, SyncedAt: time.Now().UTC()}

	s.syncService.EXPECT().SyncItem(gomock.Any(), s.userID, itemID).Return(result, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/items/"+itemID.String()+"/sync", nil)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	s.NoError(s.handler.SyncItem(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SyncResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(9, response.Result.Imported)
}

func (s *PlaidHandlerSuite) TestSyncItem_NotFound() {
	itemID := uuid.New()
	s.syncService.EXPECT().
		SyncItem(gomock.Any(), s.userID, itemID).
		Return(nil, repositories.ErrPlaidItemNotFound)

	c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/items/"+itemID.String()+"/sync", nil)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	s.NoError(s.handler.SyncItem(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYNC_003", decodeError(rec.Body.Bytes()).Error.Code)
}

func (s *PlaidHandlerSuite) TestSyncItem_InvalidID() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/plaid/items/abc/sync", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	s.NoError(s.handler.SyncItem(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
