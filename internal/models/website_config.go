package models

import "time"

// WebsiteConfig key-value site configuration (logos, footer, ...)
type WebsiteConfig struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null;default:''" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName table name override
func (WebsiteConfig) TableName() string {
	return "website_configs"
}
