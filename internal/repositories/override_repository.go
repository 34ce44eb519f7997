package repositories

import (
	"fmt"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryOverrideRepository struct {
	db *gorm.DB
}

// NewCategoryOverrideRepository creates a new category override repository
func NewCategoryOverrideRepository(db *gorm.DB) CategoryOverrideRepositoryInterface {
	return &categoryOverrideRepository{db: db}
}

// Upsert stores the override, replacing any earlier one for the same merchant
func (r *categoryOverrideRepository) Upsert(override *models.CategoryOverride) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "normalized_merchant"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "reason", "updated_at"}),
	}).Create(override).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category override: %w", err)
	}
	return nil
}

func (r *categoryOverrideRepository) ListByUser(userID uuid.UUID) ([]models.CategoryOverride, error) {
	var overrides []models.CategoryOverride
	if err := r.db.Where("user_id = ?", userID).
		Order("normalized_merchant ASC").
		Find(&overrides).Error; err != nil {
		return nil, fmt.Errorf("failed to list category overrides: %w", err)
	}
	return overrides, nil
}

func (r *categoryOverrideRepository) Delete(userID uuid.UUID, normalizedMerchant string) error {
	if err := r.db.Where("user_id = ? AND normalized_merchant = ?", userID, normalizedMerchant).
		Delete(&models.CategoryOverride{}).Error; err != nil {
		return fmt.Errorf("failed to delete category override: %w", err)
	}
	return nil
}

type recurringOverrideRepository struct {
	db *gorm.DB
}

// NewRecurringOverrideRepository creates a new recurring override repository
func NewRecurringOverrideRepository(db *gorm.DB) RecurringOverrideRepositoryInterface {
	return &recurringOverrideRepository{db: db}
}

// Upsert stores the override, replacing any earlier one for the same merchant
func (r *recurringOverrideRepository) Upsert(override *models.RecurringOverride) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "normalized_merchant"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_recurring", "frequency", "reason", "updated_at"}),
	}).Create(override).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recurring override: %w", err)
	}
	return nil
}

func (r *recurringOverrideRepository) ListByUser(userID uuid.UUID) ([]models.RecurringOverride, error) {
	var overrides []models.RecurringOverride
	if err := r.db.Where("user_id = ?", userID).
		Order("normalized_merchant ASC").
		Find(&overrides).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring overrides: %w", err)
	}
	return overrides, nil
}

func (r *recurringOverrideRepository) Delete(userID uuid.UUID, normalizedMerchant string) error {
	if err := r.db.Where("user_id = ? AND normalized_merchant = ?", userID, normalizedMerchant).
		Delete(&models.RecurringOverride{}).Error; err != nil {
		return fmt.Errorf("failed to delete recurring override: %w", err)
	}
	return nil
}
