package domain

import (
	"time"

	"harmony/constants"
	"harmony/models"
)

// NormalizeDate strips the time-of-day component so bookings recorded with
// timestamp noise still compare on whole days.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsRoomAvailable reports whether roomID is free for the half-open range
// [checkIn, checkOut). Checkout day is free: a booking ending on day N never
// conflicts with one starting on day N. Cancelled and checked-out bookings
// do not block a room. Pass excludeBookingID when editing a booking so it
// does not conflict with itself; 0 excludes nothing.
func IsRoomAvailable(roomID uint, checkIn, checkOut time.Time, bookings []models.Booking, excludeBookingID uint) bool {
	start := NormalizeDate(checkIn)
	end := NormalizeDate(checkOut)

	for _, booking := range bookings {
		if excludeBookingID != 0 && booking.ID == excludeBookingID {
			continue
		}
		if booking.RoomID != roomID {
			continue
		}
		if booking.Status == constants.BookingStatusCancelled || booking.Status == constants.BookingStatusCheckedOut {
			continue
		}

		bookedStart := NormalizeDate(booking.CheckInDate)
		bookedEnd := NormalizeDate(booking.CheckOutDate)

		// Half-open overlap: [a,b) and [c,d) intersect iff a < d && c < b.
		if start.Before(bookedEnd) && bookedStart.Before(end) {
			return false
		}
	}

	return true
}
