package services

import (
	"errors"
	"testing"
	"time"

	"budgethero/internal/models"
	"budgethero/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateActivityType() {
	tests := []struct {
		name    string
		action  string
		wantErr bool
	}{
		{"category override", models.AuditActionCategoryOverridden, false},
		{"import completed", models.AuditActionImportCompleted, false},
		{"auto detected", models.AuditActionRecurringAutoDetected, false},
		{"unknown", "invalid_action", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := ValidateActivityType(tt.action)
			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_ValidLog() {
	userID := uuid.New()
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionCategoryOverridden,
		Resource:   models.AuditResourceTransaction,
		ResourceID: uuid.New().String(),
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(l *models.AuditLog) error {
			l.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.CreateAuditLog(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_NilLog() {
	err := s.service.CreateAuditLog(nil)
	s.ErrorIs(err, ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_InvalidActivityType() {
	userID := uuid.New()
	err := s.service.CreateAuditLog(&models.AuditLog{
		UserID:   &userID,
		Action:   "invalid_action",
		Resource: models.AuditResourceTransaction,
	})
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_RepositoryError() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(errors.New("database error")).
		Times(1)

	err := s.service.CreateAuditLog(&models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionImportCompleted,
		Resource: models.AuditResourceImportBatch,
	})
	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestGetUserActivity() {
	userID := uuid.New()
	now := time.Now()
	start := now.Add(-48 * time.Hour)

	expected := []*models.AuditLog{
		{ID: uuid.New(), UserID: &userID, Action: models.AuditActionImportCompleted, CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), UserID: &userID, Action: models.AuditActionCategoryOverridden, CreatedAt: now.Add(-2 * time.Hour)},
	}

	s.Run("delegates with filters", func() {
		s.mockRepo.EXPECT().
			GetUserActivity(userID, &start, &now, 0, 10).
			Return(expected, int64(2), nil).
			Times(1)

		results, total, err := s.service.GetUserActivity(userID, &start, &now, 0, 10)
		s.NoError(err)
		s.Equal(expected, results)
		s.Equal(int64(2), total)
	})

	s.Run("invalid user", func() {
		_, _, err := s.service.GetUserActivity(uuid.Nil, nil, nil, 0, 10)
		s.ErrorIs(err, ErrInvalidUserID)
	})

	s.Run("inverted range", func() {
		_, _, err := s.service.GetUserActivity(userID, &now, &start, 0, 10)
		s.ErrorIs(err, ErrAuditDateRange)
	})

	s.Run("repository error", func() {
		s.mockRepo.EXPECT().
			GetUserActivity(userID, nil, nil, 0, 10).
			Return(nil, int64(0), errors.New("database error")).
			Times(1)

		results, _, err := s.service.GetUserActivity(userID, nil, nil, 0, 10)
		s.Error(err)
		s.Nil(results)
	})
}

func (s *AuditServiceTestSuite) TestLogCategoryOverridden() {
	userID := uuid.New()
	txnID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionCategoryOverridden, log.Action)
			s.Equal(txnID.String(), log.ResourceID)
			s.Equal(models.CategoryOther, log.GetMetadata("old_category", ""))
			s.Equal(models.CategoryTravel, log.GetMetadata("new_category", ""))
			s.Equal(true, log.GetMetadata("apply_to_merchant", false))
			return nil
		}).
		Times(1)

	err := s.service.LogCategoryOverridden(userID, txnID, models.CategoryOther, models.CategoryTravel, "delta", true)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogRecurringOverridden_WithoutTransaction() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionRecurringOverridden, log.Action)
			s.Empty(log.ResourceID)
			s.Equal(false, log.GetMetadata("is_recurring", true))
			return nil
		}).
		Times(1)

	s.NoError(s.service.LogRecurringOverridden(userID, uuid.Nil, "spotify", false))
}

func (s *AuditServiceTestSuite) TestLogMerchantCreated_AutoDetectedAction() {
	userID := uuid.New()
	merchantID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionRecurringAutoDetected, log.Action)
			s.Equal(merchantID.String(), log.ResourceID)
			return nil
		}).
		Times(1)

	s.NoError(s.service.LogMerchantCreated(userID, merchantID, "Planet Fitness", true))
}

func (s *AuditServiceTestSuite) TestLogImportCompleted() {
	userID := uuid.New()
	batch := &models.ImportBatch{
		ID:            uuid.New(),
		Format:        models.ImportFormatCSV,
		FileName:      "march.csv",
		ImportedCount: 12,
		DuplicateRows: 3,
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditResourceImportBatch, log.Resource)
			s.Equal(batch.ID.String(), log.ResourceID)
			s.Equal(12, log.GetMetadata("imported_count", 0))
			return nil
		}).
		Times(1)

	s.NoError(s.service.LogImportCompleted(userID, batch))
	s.ErrorIs(s.service.LogImportCompleted(userID, nil), ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestLogPlaidItemSynced() {
	userID := uuid.New()
	result := &models.SyncResult{ItemID: uuid.New(), Fetched: 10, Imported: 7, Duplicates: 3}

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionPlaidItemSynced, log.Action)
			s.Equal(result.ItemID.String(), log.ResourceID)
			s.Equal(3, log.GetMetadata("duplicates", 0))
			return nil
		}).
		Times(1)

	s.NoError(s.service.LogPlaidItemSynced(userID, result))
}

func (s *AuditServiceTestSuite) TestGetResourceHistory() {
	userID := uuid.New()
	resourceID := uuid.New().String()

	expected := []*models.AuditLog{
		{ID: uuid.New(), UserID: &userID, Action: models.AuditActionRecurringOverridden, Resource: models.AuditResourceTransaction},
	}

	s.Run("scoped to caller", func() {
		s.mockRepo.EXPECT().
			GetResourceHistory(&userID, models.AuditResourceTransaction, resourceID, 0, 20).
			Return(expected, int64(1), nil).
			Times(1)

		results, total, err := s.service.GetResourceHistory(&userID, models.AuditResourceTransaction, resourceID, 0, 20)
		s.NoError(err)
		s.Equal(expected, results)
		s.Equal(int64(1), total)
	})

	s.Run("all users", func() {
		s.mockRepo.EXPECT().
			GetResourceHistory(nil, models.AuditResourceRecurringMerchant, resourceID, 20, 20).
			Return(nil, int64(0), nil).
			Times(1)

		_, total, err := s.service.GetResourceHistory(nil, models.AuditResourceRecurringMerchant, resourceID, 20, 20)
		s.NoError(err)
		s.Zero(total)
	})

	s.Run("unknown resource", func() {
		_, _, err := s.service.GetResourceHistory(&userID, "account", resourceID, 0, 20)
		s.ErrorIs(err, ErrAuditResource)
	})

	s.Run("resource id not a uuid", func() {
		_, _, err := s.service.GetResourceHistory(&userID, models.AuditResourceTransaction, "42", 0, 20)
		s.ErrorIs(err, ErrAuditResourceID)
	})

	s.Run("nil user id", func() {
		nilID := uuid.Nil
		_, _, err := s.service.GetResourceHistory(&nilID, models.AuditResourceTransaction, resourceID, 0, 20)
		s.ErrorIs(err, ErrInvalidUserID)
	})
}

func (s *AuditServiceTestSuite) TestPruneOlderThan() {
	s.Run("deletes before cutoff", func() {
		before := time.Now().Add(-30 * 24 * time.Hour)
		s.mockRepo.EXPECT().
			DeleteBefore(gomock.Any()).
			DoAndReturn(func(cutoff time.Time) (int64, error) {
				s.WithinDuration(before, cutoff, time.Minute)
				return 3, nil
			}).
			Times(1)

		deleted, err := s.service.PruneOlderThan(30 * 24 * time.Hour)
		s.NoError(err)
		s.Equal(int64(3), deleted)
	})

	s.Run("non-positive retention", func() {
		_, err := s.service.PruneOlderThan(0)
		s.ErrorIs(err, ErrAuditRetention)
	})

	s.Run("repository error", func() {
		dbErr := errors.New("database error")
		s.mockRepo.EXPECT().
			DeleteBefore(gomock.Any()).
			Return(int64(0), dbErr).
			Times(1)

		_, err := s.service.PruneOlderThan(time.Hour)
		s.ErrorIs(err, dbErr)
		s.Contains(err.Error(), "failed to prune audit trail")
	})
}
