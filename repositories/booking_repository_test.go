package repositories

import (
	"testing"
	"time"

	"harmony/constants"
	"harmony/errors"
	"harmony/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*GormBookingRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	return NewBookingRepository(gdb), mock
}

func bookingRows(bookings ...models.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "room_id", "check_in_date", "check_out_date", "status"})
	for _, b := range bookings {
		rows.AddRow(b.ID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.Status)
	}
	return rows
}

func TestCreateChecked_ConflictRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	existing := models.Booking{
		ID:           9,
		RoomID:       1,
		CheckInDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:       constants.BookingStatusConfirmed,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRows(existing))
	mock.ExpectRollback()

	booking := models.Booking{
		RoomID:       1,
		CheckInDate:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Status:       constants.BookingStatusPending,
	}

	if err := repo.CreateChecked(&booking); err != errors.ErrRoomNotAvailable {
		t.Fatalf("expected ErrRoomNotAvailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateChecked_InsertsWhenFree(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRows())
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	booking := models.Booking{
		RoomID:       1,
		CheckInDate:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Status:       constants.BookingStatusPending,
	}

	if err := repo.CreateChecked(&booking); err != nil {
		t.Fatalf("expected insert to succeed, got %v", err)
	}
	if booking.ID != 1 {
		t.Fatalf("booking id got %d want 1", booking.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateChecked_CheckoutDayAdjacencyAllowed(t *testing.T) {
	repo, mock := newMockRepo(t)

	existing := models.Booking{
		ID:           9,
		RoomID:       1,
		CheckInDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:       constants.BookingStatusConfirmed,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRows(existing))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	booking := models.Booking{
		RoomID:       1,
		CheckInDate:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Status:       constants.BookingStatusPending,
	}

	if err := repo.CreateChecked(&booking); err != nil {
		t.Fatalf("back-to-back stay should be allowed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindActive_FiltersTerminalStatuses(t *testing.T) {
	repo, mock := newMockRepo(t)

	active := models.Booking{
		ID:           1,
		RoomID:       1,
		CheckInDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:       constants.BookingStatusConfirmed,
	}

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WithArgs(constants.BookingStatusCancelled, constants.BookingStatusCheckedOut).
		WillReturnRows(bookingRows(active))

	bookings, err := repo.FindActive()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != 1 {
		t.Fatalf("got %+v want the single active booking", bookings)
	}
}
