package models

import "time"

// News berita table
type News struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	PublishDate   time.Time `gorm:"not null;index" json:"publish_date"`
	Author        string    `gorm:"not null" json:"author"`
	Category      string    `gorm:"type:varchar(30);not null;index" json:"category"`
	FeaturedImage *string   `json:"featured_image"`
	Status        bool      `gorm:"not null;default:false;index" json:"status"` // true = published, false = draft
	ViewCount     int64     `gorm:"not null;default:0;index" json:"view_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName table name override
func (News) TableName() string {
	return "news"
}
