package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxAuditPageSize = 1000

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates the store for the correction and import audit trail
func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// GetUserActivity returns a user's trail, newest first, optionally bounded by creation time
func (r *auditLogRepository) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, errors.New("invalid user ID")
	}

	query := r.db.Model(&models.AuditLog{}).Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("created_at >= ?", startDate)
	}
	if endDate != nil {
		query = query.Where("created_at <= ?", endDate)
	}

	return r.page(query, offset, limit, "user activity")
}

// GetResourceHistory returns the entries recorded against one transaction,
// merchant, import batch or aggregator item, newest first. A nil userID
// returns every user's entries for the resource.
func (r *auditLogRepository) GetResourceHistory(userID *uuid.UUID, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	query := r.db.Model(&models.AuditLog{}).
		Where("resource = ? AND resource_id = ?", resource, resourceID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	return r.page(query, offset, limit, "resource history")
}

// DeleteBefore removes entries created before cutoff and reports how many went
func (r *auditLogRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune audit logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *auditLogRepository) page(query *gorm.DB, offset, limit int, what string) ([]*models.AuditLog, int64, error) {
	if limit <= 0 || limit > maxAuditPageSize {
		limit = 10
	}
	offset = max(offset, 0)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", what, err)
	}

	var logs []*models.AuditLog
	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get %s: %w", what, err)
	}

	return logs, total, nil
}
