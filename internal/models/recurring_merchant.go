package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecurringTypeUtility        = "utility"
	RecurringTypeSubscription   = "subscription"
	RecurringTypeCreditCard     = "credit_card"
	RecurringTypeLargeRecurring = "large_recurring"
	RecurringTypeExcluded       = "excluded"

	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
	FrequencyUnset     = "unset"

	ConfidenceTierHigh   = "high"
	ConfidenceTierMedium = "medium"
	ConfidenceTierLow    = "low"
)

// Recurrence provenance tags
const (
	RecurringSourceUserOverride      = "user_override"
	RecurringSourceLinkedTransaction = "linked_transaction"
	RecurringSourceMerchantMatch     = "merchant_match"
	RecurringSourceExcludedMerchant  = "excluded_merchant"
	RecurringSourceNone              = "none"
)

var (
	ErrInvalidRecurringType = errors.New("invalid recurring merchant type")
	ErrInvalidFrequency     = errors.New("invalid recurring frequency")
	ErrInvalidConfidence    = errors.New("invalid confidence tier")
)

// RecurringMerchant is a merchant known or inferred to bill periodically.
// A nil UserID marks a global seed record shared by all users.
type RecurringMerchant struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID               *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	MerchantName         string           `gorm:"type:varchar(255);not null" json:"merchant_name"`
	NormalizedName       string           `gorm:"type:varchar(255);not null;index" json:"normalized_name"`
	Category             string           `gorm:"type:varchar(50)" json:"category,omitempty"`
	TransactionType      string           `gorm:"type:varchar(30);not null;default:'subscription'" json:"transaction_type"`
	Frequency            string           `gorm:"type:varchar(20);not null;default:'unset'" json:"frequency"`
	IsActive             bool             `gorm:"default:true;index" json:"is_active"`
	AutoDetected         bool             `gorm:"default:false" json:"auto_detected"`
	ConfidenceTier       string           `gorm:"type:varchar(10);not null;default:'medium'" json:"confidence_tier"`
	Patterns             StringList       `gorm:"type:text" json:"patterns,omitempty"`
	LinkedTransactionIDs StringList       `gorm:"type:text" json:"linked_transaction_ids,omitempty"`
	LogoURL              string           `gorm:"type:varchar(500)" json:"logo_url,omitempty"`
	AverageAmount        *decimal.Decimal `gorm:"type:decimal(15,2)" json:"average_amount,omitempty"`
	DeactivatedAt        *time.Time       `json:"deactivated_at,omitempty"`
	CreatedAt            time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for RecurringMerchant
func (m *RecurringMerchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.ApplyDefaults()

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	return m.Validate()
}

// ApplyDefaults fills the derived and enum fields left empty by the caller
func (m *RecurringMerchant) ApplyDefaults() {
	if m.NormalizedName == "" {
		m.NormalizedName = NormalizeMerchantName(m.MerchantName)
	}
	if m.TransactionType == "" {
		m.TransactionType = RecurringTypeSubscription
	}
	if m.Frequency == "" {
		m.Frequency = FrequencyUnset
	}
	if m.ConfidenceTier == "" {
		m.ConfidenceTier = ConfidenceTierMedium
	}
}

// BeforeUpdate hook for RecurringMerchant. Only runs for full-struct saves;
// column updates go through UpdateColumns and skip hooks.
func (m *RecurringMerchant) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return m.Validate()
}

// Validate validates the recurring merchant fields
func (m *RecurringMerchant) Validate() error {
	if strings.TrimSpace(m.MerchantName) == "" {
		return errors.New("merchant name is required")
	}
	if !IsValidRecurringType(m.TransactionType) {
		return ErrInvalidRecurringType
	}
	if !IsValidFrequency(m.Frequency) {
		return ErrInvalidFrequency
	}
	if !IsValidConfidenceTier(m.ConfidenceTier) {
		return ErrInvalidConfidence
	}
	return nil
}

// TableName returns the table name for RecurringMerchant
func (m *RecurringMerchant) TableName() string {
	return "recurring_merchants"
}

// IsGlobal reports whether the record is shared seed data
func (m *RecurringMerchant) IsGlobal() bool {
	return m.UserID == nil
}

// Deactivate soft-deletes the record
func (m *RecurringMerchant) Deactivate() {
	now := time.Now()
	m.IsActive = false
	m.DeactivatedAt = &now
}

// LinkTransaction adds a transaction id to the explicit link list once
func (m *RecurringMerchant) LinkTransaction(transactionID string) bool {
	for _, id := range m.LinkedTransactionIDs {
		if id == transactionID {
			return false
		}
	}
	m.LinkedTransactionIDs = append(m.LinkedTransactionIDs, transactionID)
	return true
}

// RecurringMatch is the outcome of recurrence detection for one transaction
type RecurringMatch struct {
	IsRecurring       bool    `json:"is_recurring"`
	Confidence        float64 `json:"confidence"`
	Source            string  `json:"source"`
	Frequency         string  `json:"frequency,omitempty"`
	LogoURL           string  `json:"logo_url,omitempty"`
	MerchantName      string  `json:"merchant_name,omitempty"`
	MatchedMerchantID string  `json:"matched_merchant_id,omitempty"`
}

// NoRecurringMatch is the result when nothing matches
func NoRecurringMatch() RecurringMatch {
	return RecurringMatch{
		IsRecurring: false,
		Confidence:  ConfidenceNone,
		Source:      RecurringSourceNone,
	}
}

// TierConfidence maps a confidence tier to a recurrence confidence score
func TierConfidence(tier string) float64 {
	switch tier {
	case ConfidenceTierHigh:
		return 0.9
	case ConfidenceTierMedium:
		return 0.6
	case ConfidenceTierLow:
		return 0.4
	default:
		return 0.4
	}
}

// IsValidRecurringType checks the merchant transaction type
func IsValidRecurringType(t string) bool {
	switch t {
	case RecurringTypeUtility, RecurringTypeSubscription, RecurringTypeCreditCard,
		RecurringTypeLargeRecurring, RecurringTypeExcluded:
		return true
	default:
		return false
	}
}

// IsValidFrequency checks the billing frequency
func IsValidFrequency(f string) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyUnset:
		return true
	default:
		return false
	}
}

// IsValidConfidenceTier checks the confidence tier
func IsValidConfidenceTier(tier string) bool {
	switch tier {
	case ConfidenceTierHigh, ConfidenceTierMedium, ConfidenceTierLow:
		return true
	default:
		return false
	}
}

// NormalizeMerchantName lowercases, trims and collapses whitespace
func NormalizeMerchantName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// StringList stores a string slice as a JSON array column
type StringList []string

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(bytes, (*[]string)(l))
}

// Contains reports whether the list holds the value
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}
