package services

import (
	"bytes"
	"fmt"
	"time"

	"harmony/models"

	"github.com/phpdave11/gofpdf"
)

// BuildInvoicePDF renders a stored invoice into a printable PDF. It only
// formats the persisted figures, it never recomputes them.
func BuildInvoicePDF(invoice models.Invoice, booking models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invoice.InvoiceCode)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+invoice.CreatedAt.Format("02/01/2006"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name   : %s", safe(invoice.GuestName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone  : %s", safe(invoice.GuestPhone, "-")))
	pdf.Ln(7)
	if booking.GstNumber != "" {
		pdf.Cell(0, 7, fmt.Sprintf("GSTIN  : %s", booking.GstNumber))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	stay := fmt.Sprintf("Room %s, %s to %s",
		safe(invoice.RoomNumber, "-"),
		booking.CheckInDate.Format("02/01/2006"),
		booking.CheckOutDate.Format("02/01/2006"),
	)
	pdf.Cell(0, 7, stay)
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Room charges     : %10.2f", invoice.RoomCharges),
		fmt.Sprintf("CGST             : %10.2f", invoice.Cgst),
		fmt.Sprintf("SGST             : %10.2f", invoice.Sgst),
		fmt.Sprintf("Total            : %10.2f", invoice.TotalAmount),
		fmt.Sprintf("Paid             : %10.2f", invoice.PaidAmount),
		fmt.Sprintf("Balance due      : %10.2f", invoice.RemainingAmount),
	}
	pdf.SetFont("Courier", "", 12)
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for staying with us. This is a computer generated invoice.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s.pdf", invoice.InvoiceCode, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
