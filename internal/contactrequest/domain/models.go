package domain

import "time"

// ContactRequest records a buyer's interest in a business. The composite
// unique index is the source of truth for the one-request-per-pair rule.
type ContactRequest struct {
	ID          int64     `gorm:"primaryKey" json:"-"`
	RequestedBy int64     `gorm:"uniqueIndex:idx_contact_requests_pair;not null" json:"-"`
	BusinessID  int64     `gorm:"uniqueIndex:idx_contact_requests_pair;not null" json:"-"`
	Processed   bool      `gorm:"not null;default:false" json:"processed"`
	ProcessedBy string    `gorm:"size:255" json:"processed_by"`
	Status      string    `gorm:"size:255" json:"status"`
	RequestedAt time.Time `gorm:"not null" json:"requested_at"`
}

func (ContactRequest) TableName() string {
	return "contact_requests"
}
