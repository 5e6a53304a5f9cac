package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// User roles
const (
	RoleCustomer     = 1
	RoleAdmin        = 2
	RoleReceptionist = 3
)

// Booking status
const (
	BookingStatusPending    = 0
	BookingStatusConfirmed  = 1
	BookingStatusCheckedIn  = 2
	BookingStatusCheckedOut = 3
	BookingStatusCancelled  = 4
)

// Room status (cached projection derived from bookings)
const (
	RoomStatusAvailable   = 0
	RoomStatusOccupied    = 1
	RoomStatusMaintenance = 2
	RoomStatusCleaning    = 3
)

// Invoice payment status
const (
	PaymentStatusPending = 0
	PaymentStatusPaid    = 1
)

// Payment types
const (
	PaymentTypeCash     = 0
	PaymentTypeCard     = 1
	PaymentTypeTransfer = 2
	PaymentTypeUPI      = 3
)
