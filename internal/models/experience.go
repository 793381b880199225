package models

import "time"

// Experience is a staff work-history entry. The API addresses entries by
// their position in the user's list, so Position is kept dense (0..n-1).
type Experience struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Position    int    `gorm:"not null" json:"position"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Salon     string     `gorm:"size:100" json:"salon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
