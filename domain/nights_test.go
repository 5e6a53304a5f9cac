package domain

import (
	"testing"
	"time"

	"harmony/errors"
)

func TestNightsBetween(t *testing.T) {
	checkIn := day(2024, 1, 1)
	checkOut := day(2024, 1, 4)

	if got := NightsBetween(checkIn, checkOut); got != 3 {
		t.Fatalf("got %d nights want 3", got)
	}
}

func TestNightsBetween_SameDay(t *testing.T) {
	d := day(2024, 1, 1)
	if got := NightsBetween(d, d); got != 0 {
		t.Fatalf("same day got %d nights want 0", got)
	}
}

func TestNightsBetween_SwappedArgumentsStayPositive(t *testing.T) {
	checkIn := day(2024, 1, 4)
	checkOut := day(2024, 1, 1)

	if got := NightsBetween(checkIn, checkOut); got != 3 {
		t.Fatalf("swapped arguments got %d nights want 3", got)
	}
}

func TestNightsBetween_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 0, 1, 0, 0, time.UTC)

	if got := NightsBetween(checkIn, checkOut); got != 3 {
		t.Fatalf("got %d nights want 3", got)
	}
}

func TestNightsBetweenStrict_RejectsInvertedRange(t *testing.T) {
	_, err := NightsBetweenStrict(day(2024, 1, 4), day(2024, 1, 1))
	if err == nil {
		t.Fatalf("expected an error for inverted range")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidRange {
		t.Fatalf("expected INVALID_RANGE, got %v", err)
	}

	if _, err := NightsBetweenStrict(day(2024, 1, 1), day(2024, 1, 1)); err == nil {
		t.Fatalf("expected an error for zero-night range")
	}
}

func TestParseDate(t *testing.T) {
	want := day(2024, 3, 15)

	got, err := ParseDate("15/03/2024")
	if err != nil {
		t.Fatalf("dd/mm/yyyy parse failed: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got, err = ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("iso parse failed: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := ParseDate("15-03-2024"); err == nil {
		t.Fatalf("expected an error for unsupported layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected an error for empty input")
	}
}
