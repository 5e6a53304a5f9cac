package dto

// InvoiceResponse is the API shape of an invoice.
type InvoiceResponse struct {
	ID              uint    `json:"id"`
	InvoiceCode     string  `json:"invoiceCode"`
	BookingID       uint    `json:"bookingId"`
	GuestName       string  `json:"guestName"`
	GuestPhone      string  `json:"guestPhone"`
	RoomNumber      string  `json:"roomNumber"`
	RoomCharges     float64 `json:"roomCharges"`
	Cgst            float64 `json:"cgst"`
	Sgst            float64 `json:"sgst"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	Status          int     `json:"status"`
	PaymentDate     *string `json:"paymentDate,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
	AdminID         uint    `json:"adminId"`
}

// UpdatePaymentRequest marks an invoice paid.
type UpdatePaymentRequest struct {
	ID          uint `json:"id" binding:"required"`
	PaymentType int  `json:"paymentType"`
}
