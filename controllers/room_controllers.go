package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"harmony/config"
	"harmony/constants"
	"harmony/domain"
	"harmony/dto"
	"harmony/models"
	"harmony/response"
	"harmony/services"

	"github.com/gin-gonic/gin"
)

var roomCacheKey = "rooms:all"

func convertToRoomResponse(room models.Room, bookings []models.Booking, now time.Time) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.RoomId,
		RoomNumber:  room.RoomNumber,
		Type:        room.Type,
		Price:       room.Price,
		Floor:       room.Floor,
		Description: room.Description,
		Amenities:   room.Amenities,
		Avatar:      room.Avatar,
		Status:      services.DeriveRoomStatus(room, bookings, now),
	}
}

func invalidateRoomCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Error connecting to Redis for cache invalidation: %v", err)
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, roomCacheKey); err != nil {
		log.Printf("Error invalidating room cache: %v", err)
	}
}

// loadActiveBookings returns every booking that can still block a room.
func loadActiveBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := config.DB.Where("status NOT IN ?", []int{constants.BookingStatusCancelled, constants.BookingStatusCheckedOut}).
		Find(&bookings).Error
	return bookings, err
}

// GetAllRooms lists rooms with optional type/status/floor filters and an
// optional fromDate/toDate availability window.
func GetAllRooms(c *gin.Context) {
	typeFilter := c.Query("type")
	statusFilter := c.Query("status")
	floorFilter := c.Query("floor")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	page := 0
	limit := 20
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var fromDate, toDate time.Time
	var err error
	if fromDateStr != "" {
		fromDate, err = domain.ParseDate(fromDateStr)
		if err != nil {
			response.BadRequest(c, "Invalid fromDate")
			return
		}
	}
	if toDateStr != "" {
		toDate, err = domain.ParseDate(toDateStr)
		if err != nil {
			response.BadRequest(c, "Invalid toDate")
			return
		}
	}

	var rooms []models.Room
	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil || services.GetFromRedis(config.Ctx, rdb, roomCacheKey, &rooms) != nil || len(rooms) == 0 {
		if err := config.DB.Order("room_number").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, roomCacheKey, rooms, 60*time.Minute); err != nil {
				log.Printf("Error caching rooms: %v", err)
			}
		}
	}

	bookings, err := loadActiveBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	filteredRooms := make([]dto.RoomResponse, 0)
	for _, room := range rooms {
		if typeFilter != "" && room.Type != typeFilter {
			continue
		}
		if floorFilter != "" {
			if parsedFloor, err := strconv.Atoi(floorFilter); err == nil && room.Floor != parsedFloor {
				continue
			}
		}
		if fromDateStr != "" && toDateStr != "" {
			if !domain.IsRoomAvailable(room.RoomId, fromDate, toDate, bookings, 0) {
				continue
			}
		}

		roomResponse := convertToRoomResponse(room, bookings, now)
		if statusFilter != "" {
			if parsedStatus, err := strconv.Atoi(statusFilter); err == nil && roomResponse.Status != parsedStatus {
				continue
			}
		}
		filteredRooms = append(filteredRooms, roomResponse)
	}

	total := len(filteredRooms)
	start := page * limit
	end := start + limit
	if start >= total {
		filteredRooms = []dto.RoomResponse{}
	} else if end > total {
		filteredRooms = filteredRooms[start:]
	} else {
		filteredRooms = filteredRooms[start:end]
	}

	response.SuccessWithPagination(c, filteredRooms, page, limit, total)
}

// GetRoomDetail returns a single room with its derived status.
func GetRoomDetail(c *gin.Context) {
	var room models.Room
	if err := config.DB.Where("room_id = ?", c.Param("id")).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookings, err := loadActiveBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToRoomResponse(room, bookings, time.Now()))
}

// CreateRoom adds a room to the inventory, admin only.
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if request.Price < 0 {
		response.BadRequest(c, "Price must not be negative")
		return
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("room_number = ?", request.RoomNumber).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Room number already exists")
		return
	}

	room := models.Room{
		RoomNumber:  request.RoomNumber,
		Type:        request.Type,
		Price:       request.Price,
		Floor:       request.Floor,
		Description: request.Description,
		Amenities:   request.Amenities,
		Status:      constants.RoomStatusAvailable,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, room)
}

// UpdateRoom mutates price/type/floor/description, admin only.
func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", request.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Type != "" {
		room.Type = request.Type
	}
	if request.Price != nil {
		if *request.Price < 0 {
			response.BadRequest(c, "Price must not be negative")
			return
		}
		room.Price = *request.Price
	}
	if request.Floor != nil {
		room.Floor = *request.Floor
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if len(request.Amenities) > 0 {
		room.Amenities = request.Amenities
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, room)
}

// ChangeRoomStatus applies or clears a staff override. Only maintenance and
// cleaning are stored overrides; occupied/available always come from the
// booking calendar.
func ChangeRoomStatus(c *gin.Context) {
	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", request.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.Status == constants.RoomStatusOccupied {
		response.BadRequest(c, "Occupied status is derived from bookings and cannot be set manually")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, room)
}

// GetRoomBookingDates returns the per-day occupancy of a room for a month,
// with guest details on booked days.
func GetRoomBookingDates(c *gin.Context) {
	roomID := c.DefaultQuery("id", "")
	date := c.DefaultQuery("date", "")

	if roomID == "" || date == "" {
		response.BadRequest(c, "id and date are required")
		return
	}

	layout := "01/2006"
	parsedDate, err := time.Parse(layout, date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected mm/yyyy")
		return
	}

	firstDay := time.Date(parsedDate.Year(), parsedDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var bookings []models.Booking
	if err := config.DB.Where("room_id = ? AND status NOT IN ?", roomID,
		[]int{constants.BookingStatusCancelled, constants.BookingStatusCheckedOut}).
		Find(&bookings).Error; err != nil {
		log.Printf("Error retrieving room bookings: %v", err)
		response.ServerError(c)
		return
	}

	dateFormat := "02/01/2006"
	var days []dto.RoomCalendarDay

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		calendarDay := dto.RoomCalendarDay{
			Date:   day.Format(dateFormat),
			Status: constants.RoomStatusAvailable,
		}

		// Half-open: the check-out day itself stays free.
		for _, booking := range bookings {
			start := domain.NormalizeDate(booking.CheckInDate)
			end := domain.NormalizeDate(booking.CheckOutDate)
			if !day.Before(start) && day.Before(end) {
				calendarDay.Status = constants.RoomStatusOccupied
				calendarDay.Guest = map[string]string{
					"guestName":  booking.GuestName,
					"guestPhone": booking.GuestPhone,
				}
				break
			}
		}

		days = append(days, calendarDay)
	}

	response.Success(c, days)
}

// InitRooms seeds the default inventory of 17 rooms when the rooms table is
// empty: rooms 1-10 single, 11-17 double, 6 rooms per floor.
func InitRooms(c *gin.Context) {
	var count int64
	if err := config.DB.Model(&models.Room{}).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Success(c, gin.H{"message": "Rooms already initialized"})
		return
	}

	amenities, _ := json.Marshal([]string{"WiFi", "TV", "AC", "Bathroom"})
	for i := 1; i <= 17; i++ {
		room := models.Room{
			RoomNumber: fmt.Sprintf("%d", i),
			Type:       "single",
			Price:      1000,
			Floor:      (i + 5) / 6,
			Amenities:  amenities,
			Status:     constants.RoomStatusAvailable,
		}
		if i > 10 {
			room.Type = "double"
			room.Price = 1500
		}
		if err := config.DB.Create(&room).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	invalidateRoomCache()
	response.Success(c, gin.H{"message": "Successfully initialized 17 rooms"})
}
