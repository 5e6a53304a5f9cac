package domain

import (
	"testing"

	"harmony/errors"
)

func TestCalculateBill_FivePercent(t *testing.T) {
	bill, err := CalculateBill(1000, 0, 0.05)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bill.TaxAmount != 50 {
		t.Fatalf("tax got %v want 50", bill.TaxAmount)
	}
	if bill.TotalAmount != 1050 {
		t.Fatalf("total got %v want 1050", bill.TotalAmount)
	}
	if bill.RemainingAmount != 1050 {
		t.Fatalf("remaining got %v want 1050", bill.RemainingAmount)
	}
}

func TestCalculateBill_AdvanceReducesRemaining(t *testing.T) {
	bill, err := CalculateBill(1000, 1050, 0.05)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bill.RemainingAmount != 0 {
		t.Fatalf("fully paid booking should have remaining 0, got %v", bill.RemainingAmount)
	}
}

func TestCalculateBill_Overpayment(t *testing.T) {
	bill, err := CalculateBill(1000, 2000, 0.05)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Negative remaining is reported; the API layer rejects it.
	if bill.RemainingAmount != -950 {
		t.Fatalf("remaining got %v want -950", bill.RemainingAmount)
	}
}

func TestCalculateBill_Rounding(t *testing.T) {
	bill, err := CalculateBill(999.99, 0, 0.05)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bill.TaxAmount != 50.00 {
		t.Fatalf("tax got %v want 50.00", bill.TaxAmount)
	}
	if bill.TotalAmount != 1049.99 {
		t.Fatalf("total got %v want 1049.99", bill.TotalAmount)
	}
}

func TestCalculateBill_Deterministic(t *testing.T) {
	first, err := CalculateBill(1234.56, 200, 0.05)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := CalculateBill(1234.56, 200, 0.05)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Fatalf("same inputs must produce the same bill: %+v vs %+v", first, second)
	}
}

func TestCalculateBill_NegativeInputsRejected(t *testing.T) {
	cases := []struct {
		name    string
		base    float64
		advance float64
		rate    float64
	}{
		{"negative base", -1, 0, 0.05},
		{"negative advance", 1000, -1, 0.05},
		{"negative rate", 1000, 0, -0.05},
	}

	for _, tc := range cases {
		_, err := CalculateBill(tc.base, tc.advance, tc.rate)
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeInvalidArgument {
			t.Fatalf("%s: expected INVALID_ARGUMENT, got %v", tc.name, err)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.016); got != 10.02 {
		t.Fatalf("got %v want 10.02", got)
	}
	if got := Round2(10.014); got != 10.01 {
		t.Fatalf("got %v want 10.01", got)
	}
	if got := Round2(1234.5678); got != 1234.57 {
		t.Fatalf("got %v want 1234.57", got)
	}
}
