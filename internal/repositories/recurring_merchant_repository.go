package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecurringMerchantNotFound = errors.New("recurring merchant not found")
)

type recurringMerchantRepository struct {
	db *gorm.DB
}

// NewRecurringMerchantRepository creates a new recurring merchant repository
func NewRecurringMerchantRepository(db *gorm.DB) RecurringMerchantRepositoryInterface {
	return &recurringMerchantRepository{db: db}
}

func (r *recurringMerchantRepository) Create(merchant *models.RecurringMerchant) error {
	if err := r.db.Create(merchant).Error; err != nil {
		return fmt.Errorf("failed to create recurring merchant: %w", err)
	}
	return nil
}

func (r *recurringMerchantRepository) Update(merchant *models.RecurringMerchant) error {
	if err := r.db.Save(merchant).Error; err != nil {
		return fmt.Errorf("failed to update recurring merchant: %w", err)
	}
	return nil
}

func (r *recurringMerchantRepository) GetByID(id uuid.UUID) (*models.RecurringMerchant, error) {
	var merchant models.RecurringMerchant
	if err := r.db.Where("id = ?", id).First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecurringMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get recurring merchant: %w", err)
	}
	return &merchant, nil
}

// ListActiveForUser returns the active records visible to a user: their own plus global seeds
func (r *recurringMerchantRepository) ListActiveForUser(userID uuid.UUID) ([]models.RecurringMerchant, error) {
	var merchants []models.RecurringMerchant
	if err := r.db.Where("(user_id = ? OR user_id IS NULL) AND is_active = ?", userID, true).
		Order("id ASC").
		Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring merchants: %w", err)
	}
	return merchants, nil
}

// ListForUser returns the user's own records, optionally including deactivated ones
func (r *recurringMerchantRepository) ListForUser(userID uuid.UUID, includeInactive bool) ([]models.RecurringMerchant, error) {
	query := r.db.Where("user_id = ?", userID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var merchants []models.RecurringMerchant
	if err := query.Order("merchant_name ASC").Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to list user recurring merchants: %w", err)
	}
	return merchants, nil
}

// FindByNormalizedName looks up a record by name; a nil userID searches the global seeds
func (r *recurringMerchantRepository) FindByNormalizedName(userID *uuid.UUID, normalizedName string) (*models.RecurringMerchant, error) {
	query := r.db.Where("normalized_name = ?", normalizedName)
	if userID == nil {
		query = query.Where("user_id IS NULL")
	} else {
		query = query.Where("user_id = ?", *userID)
	}

	var merchant models.RecurringMerchant
	if err := query.First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecurringMerchantNotFound
		}
		return nil, fmt.Errorf("failed to find recurring merchant: %w", err)
	}
	return &merchant, nil
}

// DeactivateMatching soft-deletes the user's active records with the given name.
// UpdateColumns bypasses the model hooks, which validate whole records.
func (r *recurringMerchantRepository) DeactivateMatching(userID uuid.UUID, normalizedName string) (int64, error) {
	now := time.Now()
	result := r.db.Model(&models.RecurringMerchant{}).
		Where("user_id = ? AND normalized_name = ? AND is_active = ?", userID, normalizedName, true).
		UpdateColumns(map[string]interface{}{
			"is_active":      false,
			"deactivated_at": now,
			"updated_at":     now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate recurring merchants: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// LinkTransaction records an explicit link between a merchant and a transaction
func (r *recurringMerchantRepository) LinkTransaction(merchantID uuid.UUID, transactionID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var merchant models.RecurringMerchant
		if err := tx.Where("id = ?", merchantID).First(&merchant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecurringMerchantNotFound
			}
			return fmt.Errorf("failed to load recurring merchant: %w", err)
		}

		if !merchant.LinkTransaction(transactionID.String()) {
			return nil
		}

		if err := tx.Save(&merchant).Error; err != nil {
			return fmt.Errorf("failed to link transaction: %w", err)
		}
		return nil
	})
}

// UpsertGlobal creates or refreshes a global seed record, reporting whether it was created
func (r *recurringMerchantRepository) UpsertGlobal(merchant *models.RecurringMerchant) (bool, error) {
	merchant.UserID = nil
	if merchant.NormalizedName == "" {
		merchant.NormalizedName = models.NormalizeMerchantName(merchant.MerchantName)
	}

	existing, err := r.FindByNormalizedName(nil, merchant.NormalizedName)
	if errors.Is(err, ErrRecurringMerchantNotFound) {
		return true, r.Create(merchant)
	}
	if err != nil {
		return false, err
	}

	merchant.ID = existing.ID
	merchant.CreatedAt = existing.CreatedAt
	if merchant.ConfidenceTier == "" {
		merchant.ConfidenceTier = existing.ConfidenceTier
	}
	merchant.ApplyDefaults()
	return false, r.Update(merchant)
}
