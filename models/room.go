package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	RoomId      uint            `json:"id" gorm:"primaryKey"`
	RoomNumber  string          `json:"roomNumber" gorm:"unique;size:10"`
	Type        string          `json:"type"` // single, double, deluxe, suite
	Price       float64         `json:"price"`
	Floor       int             `json:"floor"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	Avatar      string          `json:"avatar"`
	// Status is a cached projection of the booking calendar. The cron job and
	// booking writes keep it fresh; reads that matter derive it from bookings.
	Status    int       `json:"status" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 3", r.Status)
	}
	return nil
}
