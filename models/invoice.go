package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Invoice is a financial snapshot taken when a booking is confirmed. It keeps
// its own copy of the guest and room fields so later booking edits do not
// rewrite issued invoices; only the payment fields change afterwards.
type Invoice struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	InvoiceCode string  `json:"invoiceCode" gorm:"unique;size:20"`
	BookingID   uint    `json:"bookingId"`
	Booking     Booking `json:"booking" gorm:"foreignKey:BookingID"`

	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	RoomNumber string `json:"roomNumber"`

	RoomCharges     float64 `json:"roomCharges"`
	Cgst            float64 `json:"cgst"`
	Sgst            float64 `json:"sgst"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	RemainingAmount float64 `json:"remainingAmount"`

	Status      int        `json:"status"` // 0: pending, 1: paid
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	PaymentType *int       `json:"paymentType"` // 0: cash, 1: card, 2: bank transfer, 3: UPI
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	AdminID     uint       `json:"adminId"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("HH%d", time.Now().Unix())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("invoice code already exists, please retry")
	}
	return nil
}
