package models

import "time"

// Expense is a flat ledger row with no relationships beyond its creator.
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"index"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Income mirrors Expense on the earning side. Rows created from invoice
// payments carry the invoice reference.
type Income struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Source      string    `json:"source"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"index"`
	InvoiceID   *uint     `json:"invoiceId,omitempty"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
