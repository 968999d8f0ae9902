package domain

import "time"

type Blog struct {
	ID        int64     `gorm:"primaryKey" json:"-"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:255" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

type Testimonial struct {
	ID        int64     `gorm:"primaryKey" json:"-"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
