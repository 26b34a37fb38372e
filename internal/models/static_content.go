package models

import "time"

// StaticContent fixed-key page content (visi_misi, struktur_organisasi, ...)
type StaticContent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Title     string    `gorm:"not null;default:''" json:"title"`
	Content   string    `gorm:"type:text;not null;default:''" json:"content"`
	ImagePath *string   `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName table name override
func (StaticContent) TableName() string {
	return "static_contents"
}
