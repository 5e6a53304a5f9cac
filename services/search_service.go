package services

import (
	"sort"
	"strings"

	"harmony/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// SearchResult is a ranked reception-desk lookup hit.
type SearchResult struct {
	BookingID  uint    `json:"bookingId"`
	GuestName  string  `json:"guestName"`
	GuestPhone string  `json:"guestPhone"`
	RoomNumber string  `json:"roomNumber"`
	Score      float64 `json:"score"`
}

// normalizeInput lowercases and strips accents so queries typed without
// diacritics still match stored names.
func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// createMatcher builds a closestmatch index over the given keywords.
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings between 0 and 1 using levenshtein
// distance over the longer length.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SearchBookings ranks bookings against a free-text query over guest name,
// guest phone and room number. Exact substring hits outrank fuzzy hits; fuzzy
// hits below the threshold are dropped.
func SearchBookings(query string, bookings []models.Booking) []SearchResult {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	names := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		names = append(names, normalizeInput(booking.GuestName))
	}
	cm := createMatcher(names)
	closest := cm.Closest(normalizedQuery)

	var results []SearchResult
	for _, booking := range bookings {
		name := normalizeInput(booking.GuestName)
		roomNumber := normalizeInput(booking.Room.RoomNumber)

		var score float64
		switch {
		case strings.Contains(name, normalizedQuery) || strings.Contains(booking.GuestPhone, normalizedQuery):
			score = 1.0
		case roomNumber != "" && roomNumber == normalizedQuery:
			score = 1.0
		case name == closest:
			score = calculateSimilarity(normalizedQuery, name)
		default:
			score = calculateSimilarity(normalizedQuery, name)
		}

		if score < 0.4 {
			continue
		}

		results = append(results, SearchResult{
			BookingID:  booking.ID,
			GuestName:  booking.GuestName,
			GuestPhone: booking.GuestPhone,
			RoomNumber: booking.Room.RoomNumber,
			Score:      score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}
