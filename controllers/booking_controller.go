package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"harmony/config"
	"harmony/constants"
	"harmony/domain"
	"harmony/dto"
	"harmony/errors"
	"harmony/models"
	"harmony/repositories"
	"harmony/response"
	"harmony/services"
	"harmony/validator"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

const dateFormat = "02/01/2006"

// BookingController handles the booking lifecycle. It goes through a
// repository instead of config.DB so the create path, which closes the
// double-booking race in a transaction, is testable with sqlmock.
type BookingController struct {
	Repo repositories.BookingRepository
	M    *melody.Melody
}

func NewBookingController(repo repositories.BookingRepository, m *melody.Melody) *BookingController {
	return &BookingController{Repo: repo, M: m}
}

func (bc *BookingController) broadcast(event string, payload interface{}) {
	if bc.M == nil {
		return
	}
	msg, err := json.Marshal(gin.H{"event": event, "data": payload})
	if err != nil {
		return
	}
	if err := bc.M.Broadcast(msg); err != nil {
		log.Printf("Error broadcasting %s: %v", event, err)
	}
}

func invalidateBookingCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Error connecting to Redis for cache invalidation: %v", err)
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "bookings:*"); err != nil {
		log.Printf("Error invalidating booking cache: %v", err)
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID: booking.ID,
		Room: dto.BookingRoomResponse{
			ID:         booking.Room.RoomId,
			RoomNumber: booking.Room.RoomNumber,
			Type:       booking.Room.Type,
			Price:      booking.Room.Price,
		},
		GuestName:       booking.GuestName,
		GuestEmail:      booking.GuestEmail,
		GuestPhone:      booking.GuestPhone,
		Adults:          booking.Adults,
		CheckInDate:     booking.CheckInDate.Format(dateFormat),
		CheckOutDate:    booking.CheckOutDate.Format(dateFormat),
		Nights:          domain.NightsBetween(booking.CheckInDate, booking.CheckOutDate),
		BaseAmount:      booking.BaseAmount,
		TaxAmount:       booking.TaxAmount,
		TotalAmount:     booking.TotalAmount,
		AdvancePayment:  booking.AdvancePayment,
		RemainingAmount: booking.RemainingAmount,
		PaymentMode:     booking.PaymentMode,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// GetBookings lists bookings scoped by role: customers only see their own,
// staff see everything. Optional status and date filters, paginated, cached
// per role and query.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := 0
	limit := 20
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	cacheKey := fmt.Sprintf("bookings:role:%d:user:%d:status:%s:from:%s:to:%s:page:%d:limit:%d",
		userRole, userID, statusFilter, fromDateStr, toDateStr, page, limit)

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		var cached response.Response
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.Code == 1 {
			c.JSON(200, cached)
			return
		}
	}

	bookings, err := bc.Repo.FindAll()
	if err != nil {
		response.ServerError(c)
		return
	}

	var fromDate, toDate time.Time
	if fromDateStr != "" {
		if fromDate, err = domain.ParseDate(fromDateStr); err != nil {
			response.BadRequest(c, "Invalid fromDate")
			return
		}
	}
	if toDateStr != "" {
		if toDate, err = domain.ParseDate(toDateStr); err != nil {
			response.BadRequest(c, "Invalid toDate")
			return
		}
	}

	filtered := make([]dto.BookingResponse, 0)
	for _, booking := range bookings {
		if userRole == constants.RoleCustomer {
			if booking.CreatedBy == nil || *booking.CreatedBy != userID {
				continue
			}
		}
		if statusFilter != "" {
			if parsed, err := strconv.Atoi(statusFilter); err == nil && booking.Status != parsed {
				continue
			}
		}
		// Date filter keeps bookings whose stay overlaps the window.
		if fromDateStr != "" && !booking.CheckOutDate.After(fromDate) {
			continue
		}
		if toDateStr != "" && !booking.CheckInDate.Before(toDate) {
			continue
		}
		filtered = append(filtered, convertToBookingResponse(booking))
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []dto.BookingResponse{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	if redisErr == nil {
		cached := response.Response{
			Code: 1,
			Mess: "Success",
			Data: filtered,
			Pagination: &response.Pagination{
				Page:  page,
				Limit: limit,
				Total: total,
			},
		}
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, cached, 10*time.Minute); err != nil {
			log.Printf("Error caching bookings: %v", err)
		}
	}

	response.SuccessWithPagination(c, filtered, page, limit, total)
}

// GetBookingDetail returns a single booking with its invoice code when an
// invoice has been issued.
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := bc.Repo.FindByID(uint(id))
	if err != nil {
		response.NotFound(c)
		return
	}

	userRole := c.GetInt("userRole")
	if userRole == constants.RoleCustomer {
		userID := c.GetUint("userID")
		if booking.CreatedBy == nil || *booking.CreatedBy != userID {
			response.Forbidden(c)
			return
		}
	}

	result := convertToBookingResponse(booking)

	var invoice models.Invoice
	if err := config.DB.Where("booking_id = ?", booking.ID).First(&invoice).Error; err == nil {
		result.InvoiceCode = invoice.InvoiceCode
	}

	response.Success(c, result)
}

// SearchBookings is the reception-desk lookup: free text over guest name,
// phone and room number, fuzzy-matched and ranked.
func (bc *BookingController) SearchBookings(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	bookings, err := bc.Repo.FindAll()
	if err != nil {
		response.ServerError(c)
		return
	}

	results := services.SearchBookings(query, bookings)
	response.SuccessWithTotal(c, results, len(results))
}

// CreateBooking validates the stay, prices it and inserts the booking through
// the transactional availability re-check.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	checkIn, err := domain.ParseDate(request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-in date")
		return
	}
	checkOut, err := domain.ParseDate(request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-out date")
		return
	}

	if err := validator.ValidateStayRange(checkIn, checkOut); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	if err := validator.ValidateAmount(request.AdvancePayment); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	if err := validator.ValidateGstNumber(request.GstNumber); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", request.RoomID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}
	if room.Status == constants.RoomStatusMaintenance {
		response.BadRequest(c, "Room is under maintenance")
		return
	}

	nights, err := domain.NightsBetweenStrict(checkIn, checkOut)
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	if nights < 1 {
		nights = 1
	}

	bill, err := domain.CalculateBill(room.Price*float64(nights), request.AdvancePayment, config.BookingTaxRate())
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	if bill.RemainingAmount < 0 {
		response.BadRequest(c, "Advance payment exceeds the total amount")
		return
	}

	userID := c.GetUint("userID")
	booking := models.Booking{
		RoomID:          room.RoomId,
		GuestName:       request.GuestName,
		GuestEmail:      request.GuestEmail,
		GuestPhone:      request.GuestPhone,
		GuestIDNumber:   request.GuestIDNumber,
		Adults:          request.Adults,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		BaseAmount:      bill.BaseAmount,
		TaxAmount:       bill.TaxAmount,
		TotalAmount:     bill.TotalAmount,
		AdvancePayment:  bill.AdvancePayment,
		RemainingAmount: bill.RemainingAmount,
		PaymentMode:     request.PaymentMode,
		GstNumber:       request.GstNumber,
		Status:          constants.BookingStatusPending,
		CreatedBy:       &userID,
	}

	if err := bc.Repo.CreateChecked(&booking); err != nil {
		if err == errors.ErrRoomNotAvailable {
			response.Conflict(c, "Room is not available for the selected dates")
			return
		}
		response.ServerError(c)
		return
	}

	if err := services.RefreshRoomStatuses(config.DB); err != nil {
		log.Printf("Error refreshing room statuses: %v", err)
	}
	invalidateBookingCache()
	invalidateRoomCache()

	booking.Room = room
	bc.broadcast("booking:created", convertToBookingResponse(booking))

	if booking.GuestEmail != "" {
		go func(b models.Booking) {
			if err := services.SendBookingEmail(b.GuestEmail, b.ID, b.TotalAmount,
				b.CheckInDate.Format(dateFormat), b.CheckOutDate.Format(dateFormat)); err != nil {
				log.Printf("Error sending booking email: %v", err)
			}
		}(booking)
	}

	response.Success(c, convertToBookingResponse(booking))
}

// UpdateBooking edits the stay of an existing booking. The booking is
// excluded from its own availability check so unchanged dates never conflict
// with themselves.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var request dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	booking, err := bc.Repo.FindByID(request.ID)
	if err != nil {
		response.NotFound(c)
		return
	}
	if booking.Status == constants.BookingStatusCancelled || booking.Status == constants.BookingStatusCheckedOut {
		response.BadRequest(c, "Cannot edit a cancelled or checked-out booking")
		return
	}

	roomID := booking.RoomID
	if request.RoomID != 0 {
		roomID = request.RoomID
	}

	checkIn := booking.CheckInDate
	checkOut := booking.CheckOutDate
	if request.CheckInDate != "" {
		if checkIn, err = domain.ParseDate(request.CheckInDate); err != nil {
			response.BadRequest(c, "Invalid check-in date")
			return
		}
	}
	if request.CheckOutDate != "" {
		if checkOut, err = domain.ParseDate(request.CheckOutDate); err != nil {
			response.BadRequest(c, "Invalid check-out date")
			return
		}
	}

	if err := validator.ValidateStayRange(checkIn, checkOut); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	active, err := bc.Repo.FindActive()
	if err != nil {
		response.ServerError(c)
		return
	}
	if !domain.IsRoomAvailable(roomID, checkIn, checkOut, active, booking.ID) {
		response.Conflict(c, "Room is not available for the selected dates")
		return
	}

	nights, err := domain.NightsBetweenStrict(checkIn, checkOut)
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	if nights < 1 {
		nights = 1
	}

	bill, err := domain.CalculateBill(room.Price*float64(nights), booking.AdvancePayment, config.BookingTaxRate())
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	if bill.RemainingAmount < 0 {
		response.BadRequest(c, "Advance payment exceeds the total amount")
		return
	}

	booking.RoomID = roomID
	booking.Room = room
	booking.CheckInDate = checkIn
	booking.CheckOutDate = checkOut
	booking.BaseAmount = bill.BaseAmount
	booking.TaxAmount = bill.TaxAmount
	booking.TotalAmount = bill.TotalAmount
	booking.RemainingAmount = bill.RemainingAmount
	if request.GuestName != "" {
		booking.GuestName = request.GuestName
	}
	if request.GuestPhone != "" {
		booking.GuestPhone = request.GuestPhone
	}
	if request.Adults != 0 {
		booking.Adults = request.Adults
	}

	if err := bc.Repo.Save(&booking); err != nil {
		response.ServerError(c)
		return
	}

	if err := services.RefreshRoomStatuses(config.DB); err != nil {
		log.Printf("Error refreshing room statuses: %v", err)
	}
	invalidateBookingCache()
	invalidateRoomCache()

	bc.broadcast("booking:updated", convertToBookingResponse(booking))
	response.Success(c, convertToBookingResponse(booking))
}

// ChangeBookingStatus drives the state machine with a staff action. Confirming
// a booking issues its invoice snapshot.
func (bc *BookingController) ChangeBookingStatus(c *gin.Context) {
	var request dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	booking, err := bc.Repo.FindByID(request.ID)
	if err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetBookingState(booking.Status)
	switch request.Action {
	case "confirm":
		err = state.Confirm(&booking)
	case "check-in":
		err = state.CheckIn(&booking)
	case "check-out":
		err = state.CheckOut(&booking)
	case "cancel":
		err = state.Cancel(&booking)
	default:
		response.BadRequest(c, "Unknown action, expected confirm, check-in, check-out or cancel")
		return
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := bc.Repo.Save(&booking); err != nil {
		response.ServerError(c)
		return
	}

	if request.Action == "confirm" {
		if err := bc.issueInvoice(c, booking); err != nil {
			log.Printf("Error issuing invoice for booking %d: %v", booking.ID, err)
		}
	}

	if err := services.RefreshRoomStatuses(config.DB); err != nil {
		log.Printf("Error refreshing room statuses: %v", err)
	}
	invalidateBookingCache()
	invalidateRoomCache()
	invalidateInvoiceCache()

	bc.broadcast("booking:"+request.Action, convertToBookingResponse(booking))
	response.Success(c, convertToBookingResponse(booking))
}

// issueInvoice snapshots the booking's financials into an invoice with the
// GST split applied on the room charges.
func (bc *BookingController) issueInvoice(c *gin.Context, booking models.Booking) error {
	var existing int64
	config.DB.Model(&models.Invoice{}).Where("booking_id = ?", booking.ID).Count(&existing)
	if existing > 0 {
		return nil
	}

	cgst := domain.Round2(booking.BaseAmount * config.InvoiceCgstRate())
	sgst := domain.Round2(booking.BaseAmount * config.InvoiceSgstRate())
	total := domain.Round2(booking.BaseAmount + cgst + sgst)
	remaining := domain.Round2(total - booking.AdvancePayment)

	status := constants.PaymentStatusPending
	if remaining <= 0 {
		status = constants.PaymentStatusPaid
		remaining = 0
	}

	invoice := models.Invoice{
		BookingID:       booking.ID,
		GuestName:       booking.GuestName,
		GuestPhone:      booking.GuestPhone,
		RoomNumber:      booking.Room.RoomNumber,
		RoomCharges:     booking.BaseAmount,
		Cgst:            cgst,
		Sgst:            sgst,
		TotalAmount:     total,
		PaidAmount:      booking.AdvancePayment,
		RemainingAmount: remaining,
		Status:          status,
		AdminID:         c.GetUint("userID"),
	}

	return config.DB.Create(&invoice).Error
}
