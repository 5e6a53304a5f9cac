package routes

import (
	"context"
	"net/http"

	"harmony/config"
	"harmony/constants"
	"harmony/controllers"
	middlewares "harmony/middleware"
	"harmony/repositories"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	bookingController := controllers.NewBookingController(repositories.NewBookingRepository(db), m)

	staff := middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleReceptionist)
	admin := middlewares.AuthMiddleware(constants.RoleAdmin)

	v1 := router.Group("/api/v1")

	// auth
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.GET("/users", admin, controllers.GetUsers)
	v1.POST("/users", admin, controllers.CreateReceptionist)

	// rooms
	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", admin, controllers.CreateRoom)
	v1.PUT("/roomUpdate", admin, controllers.UpdateRoom)
	v1.PUT("/roomStatus", staff, controllers.ChangeRoomStatus)
	v1.GET("/checkRoom", staff, controllers.GetRoomBookingDates)
	v1.POST("/roomsInit", admin, controllers.InitRooms)

	// bookings
	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.GET("/search", staff, bookingController.SearchBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.PUT("/bookingUpdate", staff, bookingController.UpdateBooking)
	v1.PUT("/bookingStatus", staff, bookingController.ChangeBookingStatus)

	// invoices
	v1.GET("/invoices", staff, controllers.GetInvoices)
	v1.GET("/invoices/:id", staff, controllers.GetDetailInvoice)
	v1.PUT("/paymentStatus", staff, controllers.UpdatePaymentStatus)
	v1.GET("/invoices/:id/pdf", staff, controllers.DownloadInvoicePDF)

	// ledger
	v1.GET("/expenses", admin, controllers.GetExpenses)
	v1.POST("/expenses", admin, controllers.CreateExpense)
	v1.PUT("/expenses", admin, controllers.UpdateExpense)
	v1.DELETE("/expenses/:id", admin, controllers.DeleteExpense)
	v1.GET("/income", admin, controllers.GetIncome)
	v1.POST("/income", admin, controllers.CreateIncome)

	// dashboard
	v1.GET("/dashboard/stats", staff, controllers.GetDashboardStats)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1.POST("/img/uploads", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})
}
