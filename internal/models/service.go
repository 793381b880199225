package models

import "time"

type LoyaltyProgram struct {
	Enabled        bool    `gorm:"default:true" json:"is_enabled"`
	RequiredVisits int     `gorm:"default:5" json:"required_visits"`
	DiscountType   string  `gorm:"size:30;default:'free-service'" json:"discount_type"`
	DiscountValue  float64 `gorm:"default:100" json:"discount_value"`
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null" json:"description"`

	Price       float64 `gorm:"not null" json:"price"`
	DurationMin int     `gorm:"not null" json:"duration"`

	Category string `gorm:"size:50;not null" json:"category"`
	ImageURL string `gorm:"size:255;not null" json:"image"`

	Active         bool `gorm:"default:true" json:"is_active"`
	StaffRequired  int  `gorm:"default:1" json:"staff_required"`
	AvailableSlots int  `gorm:"default:1" json:"available_slots"`

	Prerequisites string `gorm:"size:500" json:"prerequisites"`
	Aftercare     string `gorm:"size:500" json:"aftercare"`

	AvailableFor string   `gorm:"size:10;default:'all'" json:"available_for"`
	Tags         []string `gorm:"serializer:json" json:"tags"`

	Loyalty LoyaltyProgram `gorm:"embedded;embeddedPrefix:loyalty_" json:"loyalty_program"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ServiceCategories = []string{"eyelashes", "waxing", "facial", "massage", "threading"}

func IsValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

const (
	AvailableForAll   = "all"
	AvailableForMen   = "men"
	AvailableForWomen = "women"
)
