package models

import "time"

type DailySale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"`

	TotalSales  float64 `gorm:"default:0" json:"total_sales"`
	CashSales   float64 `gorm:"default:0" json:"cash_sales"`
	CardSales   float64 `gorm:"default:0" json:"card_sales"`
	OnlineSales float64 `gorm:"default:0" json:"online_sales"`

	Expenses     []Expense     `gorm:"constraint:OnDelete:CASCADE;" json:"expenses"`
	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE;" json:"transactions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Expense struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	DailySaleID uint    `gorm:"index;not null" json:"daily_sale_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Amount      float64 `gorm:"not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}

type Transaction struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	DailySaleID uint    `gorm:"index;not null" json:"daily_sale_id"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Method      string  `gorm:"size:20" json:"method"`

	CreatedAt time.Time `json:"created_at"`
}
