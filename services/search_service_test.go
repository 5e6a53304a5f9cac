package services

import (
	"testing"

	"harmony/models"
)

func searchFixtures() []models.Booking {
	return []models.Booking{
		{ID: 1, GuestName: "Rahul Sharma", GuestPhone: "9876543210", Room: models.Room{RoomNumber: "5"}},
		{ID: 2, GuestName: "Priya Patel", GuestPhone: "9123456780", Room: models.Room{RoomNumber: "12"}},
		{ID: 3, GuestName: "José García", GuestPhone: "9000000000", Room: models.Room{RoomNumber: "7"}},
	}
}

func TestSearchBookings_ExactNameSubstring(t *testing.T) {
	results := SearchBookings("rahul", searchFixtures())
	if len(results) == 0 {
		t.Fatalf("expected at least one result")
	}
	if results[0].BookingID != 1 {
		t.Fatalf("top hit got booking %d want 1", results[0].BookingID)
	}
	if results[0].Score != 1.0 {
		t.Fatalf("substring hit should score 1.0, got %v", results[0].Score)
	}
}

func TestSearchBookings_PhoneLookup(t *testing.T) {
	results := SearchBookings("9123456780", searchFixtures())
	if len(results) == 0 || results[0].BookingID != 2 {
		t.Fatalf("phone lookup should rank booking 2 first, got %+v", results)
	}
}

func TestSearchBookings_AccentInsensitive(t *testing.T) {
	results := SearchBookings("jose", searchFixtures())
	if len(results) == 0 || results[0].BookingID != 3 {
		t.Fatalf("accent-stripped lookup should rank booking 3 first, got %+v", results)
	}
}

func TestSearchBookings_TypoTolerant(t *testing.T) {
	results := SearchBookings("rahul sarma", searchFixtures())
	found := false
	for _, r := range results {
		if r.BookingID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("fuzzy lookup should still find booking 1, got %+v", results)
	}
}

func TestSearchBookings_EmptyQuery(t *testing.T) {
	if results := SearchBookings("   ", searchFixtures()); results != nil {
		t.Fatalf("blank query should return nothing, got %+v", results)
	}
}

func TestSearchBookings_NoiseFilteredOut(t *testing.T) {
	for _, r := range SearchBookings("zzzzqqqq", searchFixtures()) {
		if r.Score < 0.4 {
			t.Fatalf("results below the threshold should be dropped, got %+v", r)
		}
	}
}
