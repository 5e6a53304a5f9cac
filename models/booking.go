package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending    = 0
	BookingStatusConfirmed  = 1
	BookingStatusCheckedIn  = 2
	BookingStatusCheckedOut = 3
	BookingStatusCancelled  = 4
)

type Booking struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	RoomID uint `json:"roomId" gorm:"index"`
	Room   Room `json:"room" gorm:"foreignKey:RoomID"`

	GuestName     string `json:"guestName"`
	GuestEmail    string `json:"guestEmail,omitempty"`
	GuestPhone    string `json:"guestPhone"`
	GuestIDNumber string `json:"guestIdNumber,omitempty"` // national id shown on the reception form
	Adults        int    `json:"adults"`

	// Half-open stay window: the check-out morning is not occupied.
	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`

	BaseAmount      float64 `json:"baseAmount"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	AdvancePayment  float64 `json:"advancePayment"`
	RemainingAmount float64 `json:"remainingAmount"`
	PaymentMode     string  `json:"paymentMode,omitempty"`
	GstNumber       string  `json:"gstNumber,omitempty"`

	Status    int       `json:"status"`
	CreatedBy *uint     `json:"createdBy,omitempty"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
