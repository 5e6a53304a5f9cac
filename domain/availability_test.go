package domain

import (
	"testing"
	"time"

	"harmony/constants"
	"harmony/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, roomID uint, checkIn, checkOut time.Time, status int) models.Booking {
	return models.Booking{
		ID:           id,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}
}

func TestIsRoomAvailable_EmptyCalendar(t *testing.T) {
	if !IsRoomAvailable(1, day(2024, 1, 1), day(2024, 1, 5), nil, 0) {
		t.Fatalf("room with no bookings should be available")
	}
}

func TestIsRoomAvailable_OverlapRejected(t *testing.T) {
	existing := []models.Booking{
		booking(1, 1, day(2024, 1, 1), day(2024, 1, 5), constants.BookingStatusConfirmed),
	}

	if IsRoomAvailable(1, day(2024, 1, 3), day(2024, 1, 6), existing, 0) {
		t.Fatalf("overlapping stay should not be available")
	}
	if IsRoomAvailable(1, day(2023, 12, 30), day(2024, 1, 2), existing, 0) {
		t.Fatalf("stay overlapping the start should not be available")
	}
	if IsRoomAvailable(1, day(2024, 1, 2), day(2024, 1, 3), existing, 0) {
		t.Fatalf("stay contained in an existing booking should not be available")
	}
	if IsRoomAvailable(1, day(2023, 12, 30), day(2024, 1, 10), existing, 0) {
		t.Fatalf("stay containing an existing booking should not be available")
	}
}

func TestIsRoomAvailable_CheckoutDayIsFree(t *testing.T) {
	existing := []models.Booking{
		booking(1, 1, day(2024, 1, 1), day(2024, 1, 5), constants.BookingStatusConfirmed),
	}

	// A new guest can check in on the day the previous guest checks out.
	if !IsRoomAvailable(1, day(2024, 1, 5), day(2024, 1, 8), existing, 0) {
		t.Fatalf("check-in on the previous check-out day should be available")
	}
	if !IsRoomAvailable(1, day(2023, 12, 28), day(2024, 1, 1), existing, 0) {
		t.Fatalf("check-out on the next check-in day should be available")
	}
}

func TestIsRoomAvailable_GapBetweenBookings(t *testing.T) {
	existing := []models.Booking{
		booking(1, 1, day(2024, 1, 1), day(2024, 1, 3), constants.BookingStatusConfirmed),
		booking(2, 1, day(2024, 1, 10), day(2024, 1, 12), constants.BookingStatusConfirmed),
	}

	if !IsRoomAvailable(1, day(2024, 1, 4), day(2024, 1, 8), existing, 0) {
		t.Fatalf("stay in the gap between bookings should be available")
	}
}

func TestIsRoomAvailable_CancelledAndCheckedOutIgnored(t *testing.T) {
	existing := []models.Booking{
		booking(1, 1, day(2024, 1, 1), day(2024, 1, 5), constants.BookingStatusCancelled),
		booking(2, 1, day(2024, 1, 2), day(2024, 1, 6), constants.BookingStatusCheckedOut),
	}

	if !IsRoomAvailable(1, day(2024, 1, 3), day(2024, 1, 6), existing, 0) {
		t.Fatalf("cancelled and checked-out bookings should never block a room")
	}
}

func TestIsRoomAvailable_OtherRoomsIgnored(t *testing.T) {
	existing := []models.Booking{
		booking(1, 2, day(2024, 1, 1), day(2024, 1, 5), constants.BookingStatusConfirmed),
	}

	if !IsRoomAvailable(1, day(2024, 1, 1), day(2024, 1, 5), existing, 0) {
		t.Fatalf("bookings of other rooms should not block this room")
	}
}

func TestIsRoomAvailable_SelfExclusionOnEdit(t *testing.T) {
	existing := []models.Booking{
		booking(7, 1, day(2024, 1, 1), day(2024, 1, 5), constants.BookingStatusConfirmed),
	}

	// Editing booking 7 into a window that overlaps only itself must pass.
	if !IsRoomAvailable(1, day(2024, 1, 2), day(2024, 1, 6), existing, 7) {
		t.Fatalf("a booking should not conflict with itself during an edit")
	}
	if IsRoomAvailable(1, day(2024, 1, 2), day(2024, 1, 6), existing, 0) {
		t.Fatalf("the same window without exclusion should conflict")
	}
}

func TestNormalizeDate(t *testing.T) {
	input := time.Date(2024, 3, 15, 14, 30, 45, 123, time.UTC)
	got := NormalizeDate(input)
	want := day(2024, 3, 15)
	if !got.Equal(want) {
		t.Fatalf("normalize got %v want %v", got, want)
	}
}
