package domain

import "time"

// ViewHistory keeps one row per (viewer, business) pair. The composite unique
// index makes the first-visit rule hold under concurrent requests.
type ViewHistory struct {
	ID         int64     `gorm:"primaryKey" json:"-"`
	ViewedBy   int64     `gorm:"uniqueIndex:idx_view_histories_pair;not null" json:"-"`
	BusinessID int64     `gorm:"uniqueIndex:idx_view_histories_pair;not null" json:"-"`
	ViewedAt   time.Time `gorm:"not null" json:"viewed_at"`
}

func (ViewHistory) TableName() string {
	return "view_histories"
}
