package config

import (
	"log"
	"os"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}
}

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// Tax rates are configuration, not shared constants: booking creation and
// invoicing apply different policies (5% at booking time, 9%+9% GST split on
// the invoice). Both call sites read their rate from here.
const (
	defaultBookingTaxRate = 0.05
	defaultCgstRate       = 0.09
	defaultSgstRate       = 0.09
)

func rateFromEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		log.Printf("Warning: invalid %s=%q, using default %.2f", key, raw, fallback)
		return fallback
	}
	return rate
}

// BookingTaxRate is the rate applied when a booking is created.
func BookingTaxRate() float64 {
	return rateFromEnv("BOOKING_TAX_RATE", defaultBookingTaxRate)
}

// InvoiceCgstRate is the central GST component applied on invoices.
func InvoiceCgstRate() float64 {
	return rateFromEnv("INVOICE_CGST_RATE", defaultCgstRate)
}

// InvoiceSgstRate is the state GST component applied on invoices.
func InvoiceSgstRate() float64 {
	return rateFromEnv("INVOICE_SGST_RATE", defaultSgstRate)
}
