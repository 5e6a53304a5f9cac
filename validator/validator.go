package validator

import (
	"regexp"
	"time"

	"harmony/errors"
	"harmony/models"
)

// ValidateUser checks the fields of a new user account.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password must not be empty", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must be at least 6 characters", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "phone number must not be empty", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number", nil)
	}

	if user.Role < 1 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	return nil
}

// ValidateStayRange enforces the caller-side contract of the availability
// checker: a well-formed, non-zero-night window.
func ValidateStayRange(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "check-in and check-out dates are required", nil)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "check-out date must be after check-in date", nil)
	}
	return nil
}

// ValidateAmount rejects negative monetary amounts.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "amount must not be negative", nil)
	}
	return nil
}

// ValidateGstNumber checks the 15 character Indian GSTIN format. Empty is
// allowed, GST registration is optional on a booking.
func ValidateGstNumber(gst string) error {
	if gst == "" {
		return nil
	}
	if !gstRegex.MatchString(gst) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid GST number, expected 15 characters like 27ABCDE1234F1Z5", nil)
	}
	return nil
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	gstRegex   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
