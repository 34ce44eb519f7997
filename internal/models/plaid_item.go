package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlaidItemStatusActive = "active"
	PlaidItemStatusError  = "error"
)

// PlaidItem is a linked aggregator connection. The access token is sealed
// before storage and never serialized.
type PlaidItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ItemID          string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"item_id"`
	InstitutionName string     `gorm:"type:varchar(255)" json:"institution_name,omitempty"`
	AccessToken     []byte     `gorm:"not null" json:"-"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	LastSyncedAt    *time.Time `gorm:"index" json:"last_synced_at,omitempty"`
	LastError       string     `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for PlaidItem
func (p *PlaidItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PlaidItemStatusActive
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return nil
}

// TableName returns the table name for PlaidItem
func (p *PlaidItem) TableName() string {
	return "plaid_items"
}

// SyncResult summarizes one aggregator sync
type SyncResult struct {
	ItemID      uuid.UUID `json:"item_id"`
	Fetched     int       `json:"fetched"`
	Imported    int       `json:"imported"`
	Duplicates  int       `json:"duplicates"`
	NeedsReview int       `json:"needs_review"`
	SyncedAt    time.Time `json:"synced_at"`
}
