package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgethero/internal/dto"
	"budgethero/internal/models"
	"budgethero/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ClassificationHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	categoryService  *service_mocks.MockCategoryServiceInterface
	recurringService *service_mocks.MockRecurringServiceInterface
	handler          *ClassificationHandler
	echo             *echo.Echo
	userID           uuid.UUID
}

func TestClassificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClassificationHandlerSuite))
}

func (s *ClassificationHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.recurringService = service_mocks.NewMockRecurringServiceInterface(s.ctrl)
	s.handler = NewClassificationHandler(s.categoryService, s.recurringService, nil)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *ClassificationHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ClassificationHandlerSuite) newContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *ClassificationHandlerSuite) TestClassify_CategoryOnly() {
	description := fmt.Sprintf("WHOLE FOODS MARKET #%d", gofakeit.Number(100, 999))
	expected := models.ClassificationResult{
		Category:       models.CategoryGroceries,
		Confidence:     0.9,
		Source:         models.ClassificationSourcePartialMerchantMatch,
		MatchedPattern: "whole foods",
	}

	s.categoryService.EXPECT().
		ClassifyForUser(s.userID, description, "").
		Return(expected, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/classify", dto.ClassifyRequest{Description: description})

	s.NoError(s.handler.Classify(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ClassifyResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(expected, response.Classification)
	s.Nil(response.Recurring)
	s.Nil(response.NeedsReview)
}

func (s *ClassificationHandlerSuite) TestClassify_WithRecurringDetection() {
	testCases := []struct {
		name        string
		category    models.ClassificationResult
		match       models.RecurringMatch
		needsReview bool
	}{
		{
			name: "confident on both axes",
			category: models.ClassificationResult{
				Category:   models.CategoryEntertainment,
				Confidence: 1.0,
				Source:     models.ClassificationSourceExactMerchantMatch,
			},
			match: models.RecurringMatch{
				IsRecurring:  true,
				Confidence:   0.95,
				Source:       models.RecurringSourceMerchantMatch,
				Frequency:    models.FrequencyMonthly,
				MerchantName: "Netflix",
			},
			needsReview: false,
		},
		{
			name: "no recurrence signal",
			category: models.ClassificationResult{
				Category:   models.CategoryEntertainment,
				Confidence: 1.0,
				Source:     models.ClassificationSourceExactMerchantMatch,
			},
			match:       models.NoRecurringMatch(),
			needsReview: true,
		},
		{
			name: "weak category",
			category: models.ClassificationResult{
				Category:   models.CategoryOther,
				Confidence: 0.3,
				Source:     models.ClassificationSourceFallback,
			},
			match: models.RecurringMatch{
				IsRecurring: true,
				Confidence:  0.95,
				Source:      models.RecurringSourceMerchantMatch,
			},
			needsReview: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.categoryService.EXPECT().
				ClassifyForUser(s.userID, "NETFLIX.COM", "Netflix").
				Return(tc.category, nil)
			s.recurringService.EXPECT().
				DetectForTransaction(s.userID, gomock.Any()).
				DoAndReturn(func(_ uuid.UUID, txn *models.Transaction) (models.RecurringMatch, error) {
					s.Equal("Netflix", txn.MerchantName)
					s.Equal("NETFLIX.COM", txn.Description)
					return tc.match, nil
				})

			c, rec := s.newContext(http.MethodPost, "/api/v1/classify", dto.ClassifyRequest{
				Description:     "NETFLIX.COM",
				Merchant:        "Netflix",
				DetectRecurring: true,
			})

			s.NoError(s.handler.Classify(c))
			s.Equal(http.StatusOK, rec.Code)

			var response dto.ClassifyResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Require().NotNil(response.Recurring)
			s.Equal(tc.match.Source, response.Recurring.Source)
			s.Require().NotNil(response.NeedsReview)
			s.Equal(tc.needsReview, *response.NeedsReview)
		})
	}
}

func (s *ClassificationHandlerSuite) TestClassify_MerchantOnly() {
	expected := models.ClassificationResult{
		Category:   models.CategoryEntertainment,
		Confidence: 1.0,
		Source:     models.ClassificationSourceExactMerchantMatch,
	}

	s.categoryService.EXPECT().
		ClassifyForUser(s.userID, "", "Netflix").
		Return(expected, nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/classify", dto.ClassifyRequest{Merchant: "Netflix"})

	s.NoError(s.handler.Classify(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ClassifyResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(expected, response.Classification)
}

func (s *ClassificationHandlerSuite) TestClassify_DescriptionTooLong() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/classify", dto.ClassifyRequest{
		Description: strings.Repeat("x", 501),
	})

	s.NoError(s.handler.Classify(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", string(response.Error.Code))
	s.Contains(response.Error.Details, "description: must be at most 500 characters long")
}

func (s *ClassificationHandlerSuite) TestClassify_Unauthenticated() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Classify(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ClassificationHandlerSuite) TestClassify_OverrideLoadFails() {
	s.categoryService.EXPECT().
		ClassifyForUser(s.userID, "Uber Trip", "").
		Return(models.ClassificationResult{}, fmt.Errorf("failed to load overrides: connection refused"))

	c, rec := s.newContext(http.MethodPost, "/api/v1/classify", dto.ClassifyRequest{Description: "Uber Trip"})

	s.NoError(s.handler.Classify(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ClassificationHandlerSuite) TestConfidence() {
	s.categoryService.EXPECT().
		Confidence("Shell Oil 5742", "", models.CategoryTransportation).
		Return(0.7)

	c, rec := s.newContext(http.MethodPost, "/api/v1/classify/confidence", dto.ConfidenceRequest{
		Description: "Shell Oil 5742",
		Category:    models.CategoryTransportation,
	})

	s.NoError(s.handler.Confidence(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ConfidenceResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.InDelta(0.7, response.Confidence, 1e-9)
}

func (s *ClassificationHandlerSuite) TestCategories() {
	s.categoryService.EXPECT().Categories().Return(models.AllCategories())

	c, rec := s.newContext(http.MethodGet, "/api/v1/categories", nil)

	s.NoError(s.handler.Categories(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Cache-Control"), "max-age=3600")

	var response dto.CategoriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.AllCategories(), response.Categories)
}
