package domain

import "time"

// Balancesheet is a one-to-one document record for a business. The unique
// index on business_id keeps it at most one sheet per listing.
type Balancesheet struct {
	ID         int64     `gorm:"primaryKey" json:"-"`
	BusinessID int64     `gorm:"uniqueIndex;not null" json:"-"`
	FileName   string    `gorm:"size:255;not null" json:"file_name"`
	UploadedOn time.Time `gorm:"not null" json:"uploaded_on"`
}

func (Balancesheet) TableName() string {
	return "balancesheets"
}
