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
	ErrPlaidItemNotFound = errors.New("plaid item not found")
)

type plaidItemRepository struct {
	db *gorm.DB
}

// NewPlaidItemRepository creates a new linked item repository
func NewPlaidItemRepository(db *gorm.DB) PlaidItemRepositoryInterface {
	return &plaidItemRepository{db: db}
}

func (r *plaidItemRepository) Create(item *models.PlaidItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create plaid item: %w", err)
	}
	return nil
}

func (r *plaidItemRepository) Update(item *models.PlaidItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update plaid item: %w", err)
	}
	return nil
}

func (r *plaidItemRepository) GetByID(id uuid.UUID) (*models.PlaidItem, error) {
	var item models.PlaidItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaidItemNotFound
		}
		return nil, fmt.Errorf("failed to get plaid item: %w", err)
	}
	return &item, nil
}

func (r *plaidItemRepository) GetByIDForUser(id, userID uuid.UUID) (*models.PlaidItem, error) {
	var item models.PlaidItem
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaidItemNotFound
		}
		return nil, fmt.Errorf("failed to get plaid item: %w", err)
	}
	return &item, nil
}

func (r *plaidItemRepository) ListByUser(userID uuid.UUID) ([]models.PlaidItem, error) {
	var items []models.PlaidItem
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list plaid items: %w", err)
	}
	return items, nil
}

// ListDueForSync returns active items never synced or last synced before the cutoff
func (r *plaidItemRepository) ListDueForSync(before time.Time, limit int) ([]models.PlaidItem, error) {
	var items []models.PlaidItem
	if err := r.db.Where("status = ?", models.PlaidItemStatusActive).
		Where("last_synced_at IS NULL OR last_synced_at < ?", before).
		Order("last_synced_at ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list plaid items due for sync: %w", err)
	}
	return items, nil
}
