package repositories

import (
	"errors"
	"fmt"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrImportBatchNotFound = errors.New("import batch not found")
)

type importBatchRepository struct {
	db *gorm.DB
}

// NewImportBatchRepository creates a new import batch repository
func NewImportBatchRepository(db *gorm.DB) ImportBatchRepositoryInterface {
	return &importBatchRepository{db: db}
}

func (r *importBatchRepository) Create(batch *models.ImportBatch) error {
	if err := r.db.Create(batch).Error; err != nil {
		return fmt.Errorf("failed to create import batch: %w", err)
	}
	return nil
}

func (r *importBatchRepository) Update(batch *models.ImportBatch) error {
	if err := r.db.Save(batch).Error; err != nil {
		return fmt.Errorf("failed to update import batch: %w", err)
	}
	return nil
}

func (r *importBatchRepository) GetByID(id uuid.UUID) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	if err := r.db.Where("id = ?", id).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImportBatchNotFound
		}
		return nil, fmt.Errorf("failed to get import batch: %w", err)
	}
	return &batch, nil
}

func (r *importBatchRepository) ListByUser(userID uuid.UUID, offset, limit int) ([]models.ImportBatch, int64, error) {
	var batches []models.ImportBatch
	var total int64

	query := r.db.Model(&models.ImportBatch{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count import batches: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&batches).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list import batches: %w", err)
	}
	return batches, total, nil
}
