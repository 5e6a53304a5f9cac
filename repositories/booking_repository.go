package repositories

import (
	"harmony/constants"
	"harmony/domain"
	"harmony/errors"
	"harmony/models"

	"gorm.io/gorm"
)

// BookingRepository abstracts booking persistence so the availability and
// billing logic stays testable without a server process. The gorm
// implementation backs production; tests swap in sqlmock.
type BookingRepository interface {
	FindAll() ([]models.Booking, error)
	FindByRoom(roomID uint) ([]models.Booking, error)
	FindActive() ([]models.Booking, error)
	FindByID(id uint) (models.Booking, error)
	Create(booking *models.Booking) error
	Save(booking *models.Booking) error
	// CreateChecked re-runs the availability check inside a transaction
	// before inserting, closing the double-booking race between the caller's
	// read and its write.
	CreateChecked(booking *models.Booking) error
}

type GormBookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{DB: db}
}

func (r *GormBookingRepository) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.DB.Preload("Room").Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) FindByRoom(roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.DB.Where("room_id = ?", roomID).Find(&bookings).Error
	return bookings, err
}

// FindActive returns bookings that can still block a room, everything not
// cancelled and not checked out.
func (r *GormBookingRepository) FindActive() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.DB.Where("status NOT IN ?", []int{constants.BookingStatusCancelled, constants.BookingStatusCheckedOut}).
		Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) FindByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := r.DB.Preload("Room").First(&booking, id).Error; err != nil {
		return models.Booking{}, errors.ErrBookingNotFound
	}
	return booking, nil
}

func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.DB.Create(booking).Error
}

func (r *GormBookingRepository) Save(booking *models.Booking) error {
	return r.DB.Save(booking).Error
}

func (r *GormBookingRepository) CreateChecked(booking *models.Booking) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Booking
		if err := tx.Where("room_id = ? AND status NOT IN ?",
			booking.RoomID, []int{constants.BookingStatusCancelled, constants.BookingStatusCheckedOut}).
			Find(&existing).Error; err != nil {
			return err
		}

		if !domain.IsRoomAvailable(booking.RoomID, booking.CheckInDate, booking.CheckOutDate, existing, 0) {
			return errors.ErrRoomNotAvailable
		}

		return tx.Create(booking).Error
	})
}
