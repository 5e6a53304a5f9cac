package controllers

import (
	"strings"

	"harmony/config"
	"harmony/constants"
	"harmony/dto"
	"harmony/errors"
	"harmony/models"
	"harmony/response"
	"harmony/services"
	"harmony/validator"

	"github.com/gin-gonic/gin"
)

// GetUserIDFromToken re-exported for handlers that read the header directly.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	return services.GetUserIDFromToken(tokenString)
}

// RegisterUser creates a customer account.
func RegisterUser(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        constants.RoleCustomer,
		Status:      constants.UserStatusActive,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	created, err := services.CreateUser(user)
	if err != nil {
		if err == errors.ErrUserAlreadyExists {
			response.BadRequest(c, "Email already registered")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": created.ID, "email": created.Email})
}

// Login verifies credentials and issues an access token.
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	user, err := services.GetUserByEmail(request.Email)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	if err := services.CheckPassword(user.Password, request.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		UserID:      user.ID,
		Name:        user.Name,
		Role:        user.Role,
	})
}

// CreateReceptionist lets an admin create a receptionist account bound to
// that admin.
func CreateReceptionist(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	adminID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        constants.RoleReceptionist,
		Status:      constants.UserStatusActive,
		AdminID:     &adminID,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	created, err := services.CreateUser(user)
	if err != nil {
		if err == errors.ErrUserAlreadyExists {
			response.BadRequest(c, "Email already registered")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": created.ID, "email": created.Email})
}

// GetUsers lists accounts filtered by role, admin only.
func GetUsers(c *gin.Context) {
	roleFilter := c.Query("role")

	tx := config.DB.Model(&models.User{})
	if roleFilter != "" {
		tx = tx.Where("role = ?", roleFilter)
	}

	var users []models.User
	if err := tx.Order("created_at DESC").Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, users, len(users))
}
