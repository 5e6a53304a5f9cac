package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"harmony/config"
	"harmony/constants"
	"harmony/dto"
	"harmony/models"
	"harmony/response"
	"harmony/services"

	"github.com/gin-gonic/gin"
)

func invalidateInvoiceCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Error connecting to Redis for cache invalidation: %v", err)
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "invoices:*"); err != nil {
		log.Printf("Error invalidating invoice cache: %v", err)
	}
}

func convertToInvoiceResponse(invoice models.Invoice) dto.InvoiceResponse {
	result := dto.InvoiceResponse{
		ID:              invoice.ID,
		InvoiceCode:     invoice.InvoiceCode,
		BookingID:       invoice.BookingID,
		GuestName:       invoice.GuestName,
		GuestPhone:      invoice.GuestPhone,
		RoomNumber:      invoice.RoomNumber,
		RoomCharges:     invoice.RoomCharges,
		Cgst:            invoice.Cgst,
		Sgst:            invoice.Sgst,
		TotalAmount:     invoice.TotalAmount,
		PaidAmount:      invoice.PaidAmount,
		RemainingAmount: invoice.RemainingAmount,
		Status:          invoice.Status,
		CreatedAt:       invoice.CreatedAt.Format(dateFormat),
		UpdatedAt:       invoice.UpdatedAt.Format(dateFormat),
		AdminID:         invoice.AdminID,
	}
	if invoice.PaymentDate != nil {
		formatted := invoice.PaymentDate.Format(dateFormat)
		result.PaymentDate = &formatted
	}
	return result
}

// GetInvoices lists invoices with an optional payment status filter,
// paginated and cached per query.
func GetInvoices(c *gin.Context) {
	statusFilter := c.Query("status")

	page := 0
	limit := 20
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	cacheKey := fmt.Sprintf("invoices:status:%s:page:%d:limit:%d", statusFilter, page, limit)

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		var cached response.Response
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.Code == 1 {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	tx := config.DB.Model(&models.Invoice{})
	if statusFilter != "" {
		if parsed, err := strconv.Atoi(statusFilter); err == nil {
			tx = tx.Where("status = ?", parsed)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var invoices []models.Invoice
	if err := tx.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&invoices).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		results = append(results, convertToInvoiceResponse(invoice))
	}

	if redisErr == nil {
		cached := response.Response{
			Code: 1,
			Mess: "Success",
			Data: results,
			Pagination: &response.Pagination{
				Page:  page,
				Limit: limit,
				Total: int(total),
			},
		}
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, cached, 10*time.Minute); err != nil {
			log.Printf("Error caching invoices: %v", err)
		}
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetDetailInvoice returns a single invoice.
func GetDetailInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.First(&invoice, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, convertToInvoiceResponse(invoice))
}

// UpdatePaymentStatus marks an invoice paid, records the payment date and
// type, and writes the matching income row into the ledger.
func UpdatePaymentStatus(c *gin.Context) {
	var request dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if invoice.Status == constants.PaymentStatusPaid {
		response.BadRequest(c, "Invoice already paid")
		return
	}

	collected := invoice.RemainingAmount
	now := time.Now()
	invoice.Status = constants.PaymentStatusPaid
	invoice.PaidAmount = invoice.TotalAmount
	invoice.RemainingAmount = 0
	invoice.PaymentDate = &now
	invoice.PaymentType = &request.PaymentType

	if err := config.DB.Save(&invoice).Error; err != nil {
		response.ServerError(c)
		return
	}

	if collected > 0 {
		income := models.Income{
			Source:      "invoice",
			Amount:      collected,
			Description: fmt.Sprintf("Payment for invoice %s", invoice.InvoiceCode),
			Date:        now,
			InvoiceID:   &invoice.ID,
			CreatedBy:   c.GetUint("userID"),
		}
		if err := config.DB.Create(&income).Error; err != nil {
			log.Printf("Error recording income for invoice %s: %v", invoice.InvoiceCode, err)
		}
	}

	invalidateInvoiceCache()
	response.Success(c, convertToInvoiceResponse(invoice))
}

// DownloadInvoicePDF streams the invoice as a PDF attachment.
func DownloadInvoicePDF(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.First(&invoice, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, invoice.BookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	data, filename, err := services.BuildInvoicePDF(invoice, booking)
	if err != nil {
		log.Printf("Error building PDF for invoice %s: %v", invoice.InvoiceCode, err)
		response.ServerError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
