package domain

import "time"

// ChatbotRequest is an anonymous lead captured from the site widget.
type ChatbotRequest struct {
	ID          int64     `gorm:"primaryKey" json:"-"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Mobile      string    `gorm:"size:32;not null" json:"mobile"`
	LookingFor  string    `gorm:"size:255" json:"looking_for"`
	RequestedAt time.Time `gorm:"not null" json:"requested_at"`
}

func (ChatbotRequest) TableName() string {
	return "chatbot_requests"
}

// ChatbotNotification is a registered recipient for new-lead notifications.
type ChatbotNotification struct {
	ID     int64  `gorm:"primaryKey" json:"-"`
	Name   string `gorm:"size:255" json:"name"`
	Mobile string `gorm:"size:32;uniqueIndex;not null" json:"mobile"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

func (ChatbotNotification) TableName() string {
	return "chatbot_notifications"
}
