package models

import "time"

// Download dokumen unduhan table
type Download struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	DocumentName string    `gorm:"not null" json:"document_name"`
	Publisher    string    `gorm:"not null" json:"publisher"`
	Category     string    `gorm:"type:varchar(30);not null;index" json:"category"`
	Hits         int64     `gorm:"not null;default:0" json:"hits"`
	FilePath     string    `gorm:"not null" json:"file_path"`
	UploadDate   time.Time `gorm:"not null" json:"upload_date"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName table name override
func (Download) TableName() string {
	return "downloads"
}
