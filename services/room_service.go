package services

import (
	"log"
	"time"

	"harmony/constants"
	"harmony/domain"
	"harmony/models"

	"gorm.io/gorm"
)

// DeriveRoomStatus computes the authoritative status of a room for a given
// day from the booking calendar. A staff override (maintenance or cleaning)
// on the cached column wins; otherwise the room is occupied exactly when an
// active booking's half-open range contains the day.
func DeriveRoomStatus(room models.Room, bookings []models.Booking, today time.Time) int {
	if room.Status == constants.RoomStatusMaintenance || room.Status == constants.RoomStatusCleaning {
		return room.Status
	}

	day := domain.NormalizeDate(today)
	next := day.AddDate(0, 0, 1)
	if !domain.IsRoomAvailable(room.RoomId, day, next, bookings, 0) {
		return constants.RoomStatusOccupied
	}
	return constants.RoomStatusAvailable
}

// RefreshRoomStatuses reconciles every room's cached status column with the
// derived projection. Runs nightly and after booking writes.
func RefreshRoomStatuses(db *gorm.DB) error {
	var rooms []models.Room
	if err := db.Find(&rooms).Error; err != nil {
		return err
	}

	var bookings []models.Booking
	if err := db.Where("status NOT IN ?", []int{constants.BookingStatusCancelled, constants.BookingStatusCheckedOut}).
		Find(&bookings).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, room := range rooms {
		derived := DeriveRoomStatus(room, bookings, now)
		if derived == room.Status {
			continue
		}
		if err := db.Model(&models.Room{}).Where("room_id = ?", room.RoomId).
			Update("status", derived).Error; err != nil {
			log.Printf("Error updating status for room %s: %v", room.RoomNumber, err)
		}
	}

	return nil
}
