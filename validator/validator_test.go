package validator

import (
	"testing"
	"time"

	"harmony/models"
)

func validUser() *models.User {
	return &models.User{
		Email:       "guest@example.com",
		Password:    "secret1",
		PhoneNumber: "9876543210",
		Role:        1,
	}
}

func TestValidateUser(t *testing.T) {
	if err := ValidateUser(validUser()); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}

	user := validUser()
	user.Email = "not-an-email"
	if err := ValidateUser(user); err == nil {
		t.Fatalf("invalid email accepted")
	}

	user = validUser()
	user.Password = "short"
	if err := ValidateUser(user); err == nil {
		t.Fatalf("short password accepted")
	}

	user = validUser()
	user.PhoneNumber = "12345"
	if err := ValidateUser(user); err == nil {
		t.Fatalf("invalid phone accepted")
	}

	user = validUser()
	user.Role = 9
	if err := ValidateUser(user); err == nil {
		t.Fatalf("invalid role accepted")
	}
}

func TestValidateStayRange(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := ValidateStayRange(checkOut, checkIn); err == nil {
		t.Fatalf("inverted range accepted")
	}
	if err := ValidateStayRange(checkIn, checkIn); err == nil {
		t.Fatalf("zero-night range accepted")
	}
	if err := ValidateStayRange(time.Time{}, checkOut); err == nil {
		t.Fatalf("missing check-in accepted")
	}
}

func TestValidateGstNumber(t *testing.T) {
	if err := ValidateGstNumber(""); err != nil {
		t.Fatalf("empty GST number should be allowed: %v", err)
	}
	if err := ValidateGstNumber("27ABCDE1234F1Z5"); err != nil {
		t.Fatalf("valid GST number rejected: %v", err)
	}
	if err := ValidateGstNumber("INVALID"); err == nil {
		t.Fatalf("malformed GST number accepted")
	}
	if err := ValidateGstNumber("27abcde1234f1z5"); err == nil {
		t.Fatalf("lowercase GST number accepted")
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(0); err != nil {
		t.Fatalf("zero amount rejected: %v", err)
	}
	if err := ValidateAmount(-0.01); err == nil {
		t.Fatalf("negative amount accepted")
	}
}
