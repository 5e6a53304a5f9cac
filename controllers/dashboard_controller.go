package controllers

import (
	"log"
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

// GetDashboardStats aggregates the figures shown on the staff dashboard:
// room occupancy for today, today's arrivals and departures, and the income
// and expense totals for the current month.
func GetDashboardStats(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookings, err := loadActiveBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	today := domain.NormalizeDate(now)

	stats := dto.DashboardStatsResponse{TotalRooms: len(rooms)}

	for _, room := range rooms {
		switch services.DeriveRoomStatus(room, bookings, now) {
		case constants.RoomStatusAvailable:
			stats.AvailableRooms++
		case constants.RoomStatusOccupied:
			stats.OccupiedRooms++
		}
	}
	if stats.TotalRooms > 0 {
		stats.OccupancyRate = domain.Round2(float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100)
	}

	for _, booking := range bookings {
		if domain.NormalizeDate(booking.CheckInDate).Equal(today) {
			stats.TodayCheckIns++
		}
		if domain.NormalizeDate(booking.CheckOutDate).Equal(today) {
			stats.TodayCheckOuts++
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var monthlyIncome float64
	if err := config.DB.Model(&models.Income{}).
		Where("date >= ? AND date < ?", monthStart, monthEnd).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyIncome).Error; err != nil {
		log.Printf("Error summing monthly income: %v", err)
	}

	var monthlyExpenses float64
	if err := config.DB.Model(&models.Expense{}).
		Where("date >= ? AND date < ?", monthStart, monthEnd).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyExpenses).Error; err != nil {
		log.Printf("Error summing monthly expenses: %v", err)
	}

	stats.MonthlyIncome = domain.Round2(monthlyIncome)
	stats.TotalExpenses = domain.Round2(monthlyExpenses)
	stats.NetProfit = domain.Round2(monthlyIncome - monthlyExpenses)

	response.Success(c, stats)
}
