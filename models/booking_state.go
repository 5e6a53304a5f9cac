package models

import "errors"

// BookingState defines the allowed transitions for each booking status.
// Staff actions drive the machine: pending -> confirmed -> checked-in ->
// checked-out, with cancel allowed from any non-terminal state.
type BookingState interface {
	Confirm(booking *Booking) error
	CheckIn(booking *Booking) error
	CheckOut(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingState awaits confirmation
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in a pending booking")
}

func (s *PendingState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out a pending booking")
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// ConfirmedState is a confirmed reservation before arrival
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) CheckIn(booking *Booking) error {
	booking.Status = BookingStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(booking *Booking) error {
	return errors.New("guest has not checked in yet")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// CheckedInState means the guest occupies the room
type CheckedInState struct{}

func (s *CheckedInState) Confirm(booking *Booking) error {
	return errors.New("booking already checked in")
}

func (s *CheckedInState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked in")
}

func (s *CheckedInState) CheckOut(booking *Booking) error {
	booking.Status = BookingStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// CheckedOutState is terminal
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutState) CheckOut(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel a checked-out booking")
}

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm a cancelled booking")
}

func (s *CancelledState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in a cancelled booking")
}

func (s *CancelledState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out a cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState returns the state implementation for a status value.
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCheckedIn:
		return &CheckedInState{}
	case BookingStatusCheckedOut:
		return &CheckedOutState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
