package models

import "testing"

func TestBookingLifecycle_HappyPath(t *testing.T) {
	booking := &Booking{Status: BookingStatusPending}

	if err := GetBookingState(booking.Status).Confirm(booking); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if booking.Status != BookingStatusConfirmed {
		t.Fatalf("status got %d want confirmed", booking.Status)
	}

	if err := GetBookingState(booking.Status).CheckIn(booking); err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if booking.Status != BookingStatusCheckedIn {
		t.Fatalf("status got %d want checked-in", booking.Status)
	}

	if err := GetBookingState(booking.Status).CheckOut(booking); err != nil {
		t.Fatalf("check-out failed: %v", err)
	}
	if booking.Status != BookingStatusCheckedOut {
		t.Fatalf("status got %d want checked-out", booking.Status)
	}
}

func TestBookingLifecycle_InvalidTransitions(t *testing.T) {
	pending := &Booking{Status: BookingStatusPending}
	if err := GetBookingState(pending.Status).CheckIn(pending); err == nil {
		t.Fatalf("pending booking should not check in")
	}
	if err := GetBookingState(pending.Status).CheckOut(pending); err == nil {
		t.Fatalf("pending booking should not check out")
	}

	confirmed := &Booking{Status: BookingStatusConfirmed}
	if err := GetBookingState(confirmed.Status).CheckOut(confirmed); err == nil {
		t.Fatalf("confirmed booking should not check out before check-in")
	}
	if err := GetBookingState(confirmed.Status).Confirm(confirmed); err == nil {
		t.Fatalf("confirmed booking should not confirm twice")
	}
}

func TestBookingLifecycle_CancelFromNonTerminalStates(t *testing.T) {
	for _, status := range []int{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn} {
		booking := &Booking{Status: status}
		if err := GetBookingState(booking.Status).Cancel(booking); err != nil {
			t.Fatalf("cancel from status %d failed: %v", status, err)
		}
		if booking.Status != BookingStatusCancelled {
			t.Fatalf("status got %d want cancelled", booking.Status)
		}
	}
}

func TestBookingLifecycle_TerminalStatesStayTerminal(t *testing.T) {
	checkedOut := &Booking{Status: BookingStatusCheckedOut}
	state := GetBookingState(checkedOut.Status)
	if err := state.Cancel(checkedOut); err == nil {
		t.Fatalf("checked-out booking should not cancel")
	}
	if err := state.Confirm(checkedOut); err == nil {
		t.Fatalf("checked-out booking should not confirm")
	}

	cancelled := &Booking{Status: BookingStatusCancelled}
	state = GetBookingState(cancelled.Status)
	if err := state.Confirm(cancelled); err == nil {
		t.Fatalf("cancelled booking should not confirm")
	}
	if err := state.Cancel(cancelled); err == nil {
		t.Fatalf("cancelled booking should not cancel twice")
	}
}
