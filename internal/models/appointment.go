package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Exactly one of UserID / GuestName identifies the subject.
	UserID *uint `gorm:"index" json:"user_id,omitempty"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	GuestName  string `gorm:"size:100" json:"guest_name,omitempty"`
	GuestPhone string `gorm:"size:20" json:"guest_phone,omitempty"`

	ServiceID uint     `gorm:"index;not null" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// Date and time are stored exactly as booked ("2006-01-02" / "15:04"),
	// never combined into a timestamp.
	AppointmentDate string `gorm:"size:10;index;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	StaffID *uint `gorm:"index" json:"staff_id,omitempty"`
	Staff   *User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	Notes       string  `gorm:"size:255" json:"notes"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration"`

	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	Rating int    `json:"rating,omitempty"`
	Review string `gorm:"size:500" json:"review,omitempty"`

	QueueNumber int `gorm:"not null" json:"queue_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
	PaymentFailed   = "failed"
)
