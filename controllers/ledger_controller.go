package controllers

import (
	"strconv"
	"time"

	"harmony/config"
	"harmony/domain"
	"harmony/dto"
	"harmony/errors"
	"harmony/models"
	"harmony/response"
	"harmony/validator"

	"github.com/gin-gonic/gin"
)

type dateWindow struct {
	From *time.Time
	To   *time.Time
}

// ledgerWindow parses the optional fromDate/toDate query filters shared by
// the expense and income listings.
func ledgerWindow(c *gin.Context) (*dateWindow, bool) {
	window := &dateWindow{}
	if raw := c.Query("fromDate"); raw != "" {
		from, err := domain.ParseDate(raw)
		if err != nil {
			response.BadRequest(c, "Invalid fromDate")
			return nil, false
		}
		window.From = &from
	}
	if raw := c.Query("toDate"); raw != "" {
		to, err := domain.ParseDate(raw)
		if err != nil {
			response.BadRequest(c, "Invalid toDate")
			return nil, false
		}
		window.To = &to
	}
	return window, true
}

// GetExpenses lists expenses, newest first, optionally windowed by date.
func GetExpenses(c *gin.Context) {
	window, ok := ledgerWindow(c)
	if !ok {
		return
	}

	tx := config.DB.Model(&models.Expense{})
	if window.From != nil {
		tx = tx.Where("date >= ?", *window.From)
	}
	if window.To != nil {
		tx = tx.Where("date < ?", *window.To)
	}

	var expenses []models.Expense
	if err := tx.Order("date DESC").Find(&expenses).Error; err != nil {
		response.ServerError(c)
		return
	}

	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}

	response.Success(c, gin.H{"expenses": expenses, "totalAmount": domain.Round2(total)})
}

// CreateExpense records an outgoing ledger row.
func CreateExpense(c *gin.Context) {
	var request dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	date, err := domain.ParseDate(request.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	expense := models.Expense{
		Category:    request.Category,
		Amount:      domain.Round2(request.Amount),
		Description: request.Description,
		Date:        date,
		CreatedBy:   c.GetUint("userID"),
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, expense)
}

// UpdateExpense edits a ledger row.
func UpdateExpense(c *gin.Context) {
	var request dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var expense models.Expense
	if err := config.DB.First(&expense, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Category != "" {
		expense.Category = request.Category
	}
	if request.Amount != nil {
		if err := validator.ValidateAmount(*request.Amount); err != nil {
			response.BadRequest(c, errors.GetAppError(err).Message)
			return
		}
		expense.Amount = domain.Round2(*request.Amount)
	}
	if request.Description != "" {
		expense.Description = request.Description
	}
	if request.Date != "" {
		date, err := domain.ParseDate(request.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		expense.Date = date
	}

	if err := config.DB.Save(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, expense)
}

// DeleteExpense removes a ledger row.
func DeleteExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid expense id")
		return
	}

	result := config.DB.Delete(&models.Expense{}, uint(id))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

// GetIncome lists income rows, newest first, optionally windowed by date.
func GetIncome(c *gin.Context) {
	window, ok := ledgerWindow(c)
	if !ok {
		return
	}

	tx := config.DB.Model(&models.Income{})
	if window.From != nil {
		tx = tx.Where("date >= ?", *window.From)
	}
	if window.To != nil {
		tx = tx.Where("date < ?", *window.To)
	}

	var income []models.Income
	if err := tx.Order("date DESC").Find(&income).Error; err != nil {
		response.ServerError(c)
		return
	}

	var total float64
	for _, row := range income {
		total += row.Amount
	}

	response.Success(c, gin.H{"income": income, "totalAmount": domain.Round2(total)})
}

// CreateIncome records a manual income row; invoice payments create theirs
// automatically.
func CreateIncome(c *gin.Context) {
	var request dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	date, err := domain.ParseDate(request.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	income := models.Income{
		Source:      request.Source,
		Amount:      domain.Round2(request.Amount),
		Description: request.Description,
		Date:        date,
		CreatedBy:   c.GetUint("userID"),
	}

	if err := config.DB.Create(&income).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, income)
}
