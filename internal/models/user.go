package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"firstname"`
	LastName  string `gorm:"size:100;not null" json:"lastname"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20;uniqueIndex" json:"phone"`

	Role string `gorm:"size:20;default:'customer'" json:"role"`

	GoogleID      *string `gorm:"size:100;uniqueIndex" json:"google_id,omitempty"`
	EmailVerified bool    `gorm:"default:false" json:"is_email_verified"`

	RefreshToken string `gorm:"size:512" json:"-"`

	ResetOTPHash    string     `gorm:"size:64" json:"-"`
	ResetOTPExpires *time.Time `json:"-"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	Status    string     `gorm:"size:20;default:'active'" json:"status"`

	// Only relevant for role=staff
	Experiences []Experience `gorm:"constraint:OnDelete:CASCADE;" json:"experiences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBlocked  = "blocked"
)
