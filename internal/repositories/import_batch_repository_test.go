package repositories

import (
	"testing"
	"time"

	"budgethero/internal/database"
	"budgethero/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ImportBatchRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   ImportBatchRepositoryInterface
	userID uuid.UUID
}

func (s *ImportBatchRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewImportBatchRepository(s.db.DB)
	s.userID = uuid.New()
}

func (s *ImportBatchRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestImportBatchRepositorySuite(t *testing.T) {
	suite.Run(t, new(ImportBatchRepositorySuite))
}

func (s *ImportBatchRepositorySuite) newBatch(createdAt time.Time) *models.ImportBatch {
	return &models.ImportBatch{
		UserID:    s.userID,
		Format:    models.ImportFormatCSV,
		FileName:  gofakeit.Word() + ".csv",
		Status:    models.ImportStatusCompleted,
		TotalRows: gofakeit.Number(1, 100),
		CreatedAt: createdAt,
	}
}

func (s *ImportBatchRepositorySuite) TestCreateAndUpdate() {
	batch := s.newBatch(time.Time{})
	s.Require().NoError(s.repo.Create(batch))
	s.NotEqual(uuid.Nil, batch.ID)
	s.NotZero(batch.CreatedAt)

	batch.Fail("no valid transactions found in file")
	s.NoError(s.repo.Update(batch))

	stored, err := s.repo.GetByID(batch.ID)
	s.NoError(err)
	s.Equal(models.ImportStatusFailed, stored.Status)
	s.Equal("no valid transactions found in file", stored.ErrorMessage)
	s.NotNil(stored.CompletedAt)
}

func (s *ImportBatchRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrImportBatchNotFound)
}

func (s *ImportBatchRepositorySuite) TestListByUser_Pagination() {
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		s.Require().NoError(s.repo.Create(s.newBatch(base.Add(time.Duration(i) * time.Minute))))
	}
	other := s.newBatch(base)
	other.UserID = uuid.New()
	s.Require().NoError(s.repo.Create(other))

	batches, total, err := s.repo.ListByUser(s.userID, 0, 2)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(batches, 2)
	s.True(batches[0].CreatedAt.After(batches[1].CreatedAt), "newest first")

	batches, _, err = s.repo.ListByUser(s.userID, 4, 2)
	s.NoError(err)
	s.Len(batches, 1)
}
