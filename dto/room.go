package dto

import "encoding/json"

// CreateRoomRequest is the payload of POST /rooms.
type CreateRoomRequest struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Price       float64         `json:"price"`
	Floor       int             `json:"floor"`
	Description string          `json:"description,omitempty"`
	Amenities   json.RawMessage `json:"amenities,omitempty"`
}

// UpdateRoomRequest mutates price/type/description of a room.
type UpdateRoomRequest struct {
	ID          uint            `json:"id" binding:"required"`
	Type        string          `json:"type,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	Floor       *int            `json:"floor,omitempty"`
	Description string          `json:"description,omitempty"`
	Amenities   json.RawMessage `json:"amenities,omitempty"`
}

// ChangeRoomStatusRequest applies a staff override (maintenance, cleaning)
// or clears it back to the derived status.
type ChangeRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomResponse is the API shape of a room; Status carries the derived
// projection, not the raw cached column.
type RoomResponse struct {
	ID          uint            `json:"id"`
	RoomNumber  string          `json:"roomNumber"`
	Type        string          `json:"type"`
	Price       float64         `json:"price"`
	Floor       int             `json:"floor"`
	Description string          `json:"description,omitempty"`
	Amenities   json.RawMessage `json:"amenities,omitempty"`
	Avatar      string          `json:"avatar,omitempty"`
	Status      int             `json:"status"`
}

// RoomCalendarDay is one day in the per-room booking calendar.
type RoomCalendarDay struct {
	Date   string            `json:"date"`
	Status int               `json:"status"`
	Guest  map[string]string `json:"guest,omitempty"`
}
