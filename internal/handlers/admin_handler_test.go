package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgethero/internal/models"
	"budgethero/internal/services"
	"budgethero/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerSuite))
}

type AdminHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	auditService *service_mocks.MockAuditServiceInterface
	handler      *AdminHandler
	e            *echo.Echo
	userID       uuid.UUID
}

func (s *AdminHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewAdminHandler(s.auditService, nil)
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *AdminHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdminHandlerSuite) newContext(target string, isAdmin bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.Set("is_admin", isAdmin)
	return c, rec
}

func (s *AdminHandlerSuite) auditLog(action string) *models.AuditLog {
	return &models.AuditLog{
		ID:        uuid.New(),
		UserID:    &s.userID,
		Action:    action,
		Resource:  models.AuditResourceTransaction,
		CreatedAt: time.Now(),
	}
}

func (s *AdminHandlerSuite) TestListActivity() {
	s.Run("returns the caller's trail with pagination meta", func() {
		logs := []*models.AuditLog{
			s.auditLog(models.AuditActionCategoryOverridden),
			s.auditLog(models.AuditActionRecurringOverridden),
		}
		s.auditService.EXPECT().
			GetUserActivity(s.userID, nil, nil, 20, 20).
			Return(logs, int64(42), nil)

		c, rec := s.newContext("/api/v1/activity?page=2", false)
		s.Require().NoError(s.handler.ListActivity(c))

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			Data []models.AuditLog  `json:"data"`
			Meta map[string]float64 `json:"meta"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Len(body.Data, 2)
		s.Equal(float64(42), body.Meta["total"])
		s.Equal(float64(3), body.Meta["total_pages"])
	})

	s.Run("passes the date range through", func() {
		s.auditService.EXPECT().
			GetUserActivity(s.userID, gomock.Any(), gomock.Any(), 0, 20).
			DoAndReturn(func(_ uuid.UUID, start, end *time.Time, _, _ int) ([]*models.AuditLog, int64, error) {
				s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *start)
				s.Equal(31, end.Day())
				s.Equal(23, end.Hour())
				return nil, 0, nil
			})

		c, rec := s.newContext("/api/v1/activity?start_date=2024-03-01&end_date=2024-03-31", false)
		s.Require().NoError(s.handler.ListActivity(c))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("inverted range", func() {
		s.auditService.EXPECT().
			GetUserActivity(s.userID, gomock.Any(), gomock.Any(), 0, 20).
			Return(nil, int64(0), services.ErrAuditDateRange)

		c, rec := s.newContext("/api/v1/activity?start_date=2024-04-01&end_date=2024-03-01", false)
		s.Require().NoError(s.handler.ListActivity(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_004", decodeError(rec.Body.Bytes()).Error.Code)
	})

	invalid := []struct {
		name   string
		target string
		code   string
	}{
		{"page zero", "/api/v1/activity?page=0", "VALIDATION_001"},
		{"limit too large", "/api/v1/activity?limit=500", "VALIDATION_001"},
		{"bad start date", "/api/v1/activity?start_date=03/01/2024", "VALIDATION_005"},
		{"bad end date", "/api/v1/activity?end_date=tomorrow", "VALIDATION_005"},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			c, rec := s.newContext(tc.target, false)
			s.Require().NoError(s.handler.ListActivity(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tc.code, decodeError(rec.Body.Bytes()).Error.Code)
		})
	}
}

func (s *AdminHandlerSuite) TestListUserActivity() {
	target := uuid.New()

	s.Run("admin reads another user's trail", func() {
		s.auditService.EXPECT().
			GetUserActivity(target, nil, nil, 0, 20).
			Return([]*models.AuditLog{s.auditLog(models.AuditActionImportCompleted)}, int64(1), nil)

		c, rec := s.newContext("/api/v1/admin/users/"+target.String()+"/activity", true)
		c.SetParamNames("userId")
		c.SetParamValues(target.String())
		s.Require().NoError(s.handler.ListUserActivity(c))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("non-admin is rejected", func() {
		c, rec := s.newContext("/api/v1/admin/users/"+target.String()+"/activity", false)
		c.SetParamNames("userId")
		c.SetParamValues(target.String())
		s.Require().NoError(s.handler.ListUserActivity(c))

		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("AUTH_004", decodeError(rec.Body.Bytes()).Error.Code)
	})

	s.Run("invalid user id", func() {
		c, rec := s.newContext("/api/v1/admin/users/nope/activity", true)
		c.SetParamNames("userId")
		c.SetParamValues("nope")
		s.Require().NoError(s.handler.ListUserActivity(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_006", decodeError(rec.Body.Bytes()).Error.Code)
	})
}

func (s *AdminHandlerSuite) TestListResourceHistory() {
	txnID := uuid.New()
	target := "/api/v1/activity/transaction/" + txnID.String()

	s.Run("caller-scoped history", func() {
		s.auditService.EXPECT().
			GetResourceHistory(&s.userID, models.AuditResourceTransaction, txnID.String(), 0, 20).
			Return([]*models.AuditLog{
				s.auditLog(models.AuditActionRecurringOverridden),
				s.auditLog(models.AuditActionCategoryOverridden),
			}, int64(2), nil)

		c, rec := s.newContext(target, false)
		c.SetParamNames("resource", "resourceId")
		c.SetParamValues(models.AuditResourceTransaction, txnID.String())
		s.Require().NoError(s.handler.ListResourceHistory(c))

		s.Equal(http.StatusOK, rec.Code)
		var response struct {
			Data []models.AuditLog      `json:"data"`
			Meta map[string]interface{} `json:"meta"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response.Data, 2)
		s.EqualValues(2, response.Meta["total"])
	})

	s.Run("unknown resource", func() {
		s.auditService.EXPECT().
			GetResourceHistory(&s.userID, "account", txnID.String(), 0, 20).
			Return(nil, int64(0), services.ErrAuditResource)

		c, rec := s.newContext("/api/v1/activity/account/"+txnID.String(), false)
		c.SetParamNames("resource", "resourceId")
		c.SetParamValues("account", txnID.String())
		s.Require().NoError(s.handler.ListResourceHistory(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_003", decodeError(rec.Body.Bytes()).Error.Code)
	})

	s.Run("invalid resource id", func() {
		c, rec := s.newContext("/api/v1/activity/transaction/nope", false)
		c.SetParamNames("resource", "resourceId")
		c.SetParamValues(models.AuditResourceTransaction, "nope")
		s.Require().NoError(s.handler.ListResourceHistory(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_006", decodeError(rec.Body.Bytes()).Error.Code)
	})
}

func (s *AdminHandlerSuite) TestListAnyResourceHistory() {
	merchantID := uuid.New()

	s.Run("admin sees every user's entries", func() {
		s.auditService.EXPECT().
			GetResourceHistory(nil, models.AuditResourceRecurringMerchant, merchantID.String(), 20, 20).
			Return([]*models.AuditLog{}, int64(21), nil)

		c, rec := s.newContext("/api/v1/admin/activity/recurring_merchant/"+merchantID.String()+"?page=2", true)
		c.SetParamNames("resource", "resourceId")
		c.SetParamValues(models.AuditResourceRecurringMerchant, merchantID.String())
		s.Require().NoError(s.handler.ListAnyResourceHistory(c))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("non-admin is rejected", func() {
		c, rec := s.newContext("/api/v1/admin/activity/recurring_merchant/"+merchantID.String(), false)
		c.SetParamNames("resource", "resourceId")
		c.SetParamValues(models.AuditResourceRecurringMerchant, merchantID.String())
		s.Require().NoError(s.handler.ListAnyResourceHistory(c))

		s.Equal(http.StatusForbidden, rec.Code)
	})
}
