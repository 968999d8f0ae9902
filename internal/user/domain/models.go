package domain

import "time"

type User struct {
	ID               int64     `gorm:"primaryKey" json:"-"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CountryCode      int       `gorm:"not null;default:91" json:"country_code"`
	Mobile           string    `gorm:"size:32;uniqueIndex;not null" json:"mobile"`
	FirstName        string    `gorm:"size:255" json:"first_name"`
	LastName         string    `gorm:"size:255" json:"last_name"`
	OrganisationName string    `gorm:"size:255" json:"organisation_name"`
	IsStaff          bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// OneTimePassword holds the latest OTP per user; re-requests overwrite it.
type OneTimePassword struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"uniqueIndex;not null"`
	OTP       string    `gorm:"size:16;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (OneTimePassword) TableName() string {
	return "one_time_passwords"
}

// AuthToken is an opaque bearer credential issued after OTP verification.
type AuthToken struct {
	ID        int64     `gorm:"primaryKey"`
	Key       string    `gorm:"size:128;uniqueIndex;not null"`
	UserID    int64     `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
