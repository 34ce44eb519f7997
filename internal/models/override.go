package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidOverride = errors.New("invalid override")

// CategoryOverride pins a category for every transaction of a merchant
type CategoryOverride struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_category_override_user_merchant" json:"user_id"`
	NormalizedMerchant string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_category_override_user_merchant" json:"normalized_merchant"`
	Category           string    `gorm:"type:varchar(50);not null" json:"category"`
	Reason             string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CategoryOverride
func (o *CategoryOverride) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	if o.UserID == uuid.Nil || o.NormalizedMerchant == "" || strings.TrimSpace(o.Category) == "" {
		return ErrInvalidOverride
	}
	return nil
}

// TableName returns the table name for CategoryOverride
func (o *CategoryOverride) TableName() string {
	return "category_overrides"
}

// RecurringOverride pins the recurring flag for a merchant
type RecurringOverride struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recurring_override_user_merchant" json:"user_id"`
	NormalizedMerchant string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_recurring_override_user_merchant" json:"normalized_merchant"`
	IsRecurring        bool      `gorm:"not null" json:"is_recurring"`
	Frequency          string    `gorm:"type:varchar(20)" json:"frequency,omitempty"`
	Reason             string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for RecurringOverride
func (o *RecurringOverride) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	if o.UserID == uuid.Nil || o.NormalizedMerchant == "" {
		return ErrInvalidOverride
	}
	return nil
}

// TableName returns the table name for RecurringOverride
func (o *RecurringOverride) TableName() string {
	return "recurring_overrides"
}
