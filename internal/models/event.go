package models

import "time"

// Event agenda kegiatan table
type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	EventName   string    `gorm:"not null" json:"event_name"`
	StartDate   time.Time `gorm:"not null;index" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Time        string    `gorm:"not null" json:"time"` // free-text, e.g. "09.00 - 12.00 WIB"
	Location    string    `gorm:"not null" json:"location"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Organizer   string    `gorm:"not null" json:"organizer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName table name override
func (Event) TableName() string {
	return "events"
}
