package models

import "time"

// Announcement pengumuman table
type Announcement struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	PublishDate    time.Time `gorm:"not null;index" json:"publish_date"`
	AttachmentFile *string   `json:"attachment_file"`
	Status         bool      `gorm:"not null;index" json:"status"` // true = active, false = inactive
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName table name override
func (Announcement) TableName() string {
	return "announcements"
}
