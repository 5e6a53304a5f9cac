package dto

import "time"

// CreateBookingRequest is the payload of POST /bookings.
type CreateBookingRequest struct {
	RoomID         uint    `json:"roomId" binding:"required"`
	GuestName      string  `json:"guestName" binding:"required"`
	GuestEmail     string  `json:"guestEmail,omitempty"`
	GuestPhone     string  `json:"guestPhone" binding:"required"`
	GuestIDNumber  string  `json:"guestIdNumber,omitempty"`
	Adults         int     `json:"adults"`
	CheckInDate    string  `json:"checkInDate" binding:"required"`
	CheckOutDate   string  `json:"checkOutDate" binding:"required"`
	AdvancePayment float64 `json:"advancePayment"`
	PaymentMode    string  `json:"paymentMode,omitempty"`
	GstNumber      string  `json:"gstNumber,omitempty"`
}

// UpdateBookingRequest edits the stay of an existing booking. The booking
// being edited is excluded from its own availability check.
type UpdateBookingRequest struct {
	ID           uint   `json:"id" binding:"required"`
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	GuestName    string `json:"guestName,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
	Adults       int    `json:"adults"`
}

// StatusUpdateRequest drives the booking state machine.
type StatusUpdateRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Action string `json:"action" binding:"required"` // confirm, check-in, check-out, cancel
}

// BookingRoomResponse is the room slice embedded in booking responses.
type BookingRoomResponse struct {
	ID         uint    `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID              uint                `json:"id"`
	Room            BookingRoomResponse `json:"room"`
	GuestName       string              `json:"guestName"`
	GuestEmail      string              `json:"guestEmail,omitempty"`
	GuestPhone      string              `json:"guestPhone"`
	Adults          int                 `json:"adults"`
	CheckInDate     string              `json:"checkInDate"`
	CheckOutDate    string              `json:"checkOutDate"`
	Nights          int                 `json:"nights"`
	BaseAmount      float64             `json:"baseAmount"`
	TaxAmount       float64             `json:"taxAmount"`
	TotalAmount     float64             `json:"totalAmount"`
	AdvancePayment  float64             `json:"advancePayment"`
	RemainingAmount float64             `json:"remainingAmount"`
	PaymentMode     string              `json:"paymentMode,omitempty"`
	Status          int                 `json:"status"`
	InvoiceCode     string              `json:"invoiceCode,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}
