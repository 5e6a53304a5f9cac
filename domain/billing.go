package domain

import (
	"math"

	"harmony/errors"
)

// BillDetail holds every derived figure of a bill. The same fields are
// persisted on bookings and snapshotted onto invoices, so rounding happens
// here rather than at display time.
type BillDetail struct {
	BaseAmount      float64 `json:"baseAmount"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	AdvancePayment  float64 `json:"advancePayment"`
	RemainingAmount float64 `json:"remainingAmount"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// CalculateBill derives tax, total and remaining balance from a base charge
// and an advance payment. taxRate is a fraction (0.05 for 5%) and is passed
// explicitly because booking creation and invoicing use different rates.
// Negative inputs are rejected instead of producing a nonsensical bill.
func CalculateBill(baseAmount, advancePayment, taxRate float64) (BillDetail, error) {
	if baseAmount < 0 {
		return BillDetail{}, errors.NewAppError(errors.ErrCodeInvalidArgument, "base amount must not be negative", nil)
	}
	if advancePayment < 0 {
		return BillDetail{}, errors.NewAppError(errors.ErrCodeInvalidArgument, "advance payment must not be negative", nil)
	}
	if taxRate < 0 {
		return BillDetail{}, errors.NewAppError(errors.ErrCodeInvalidArgument, "tax rate must not be negative", nil)
	}

	taxAmount := Round2(baseAmount * taxRate)
	totalAmount := Round2(baseAmount + taxAmount)
	remainingAmount := Round2(totalAmount - advancePayment)

	return BillDetail{
		BaseAmount:      Round2(baseAmount),
		TaxAmount:       taxAmount,
		TotalAmount:     totalAmount,
		AdvancePayment:  Round2(advancePayment),
		RemainingAmount: remainingAmount,
	}, nil
}
