package services

import (
	"fmt"
	"net/smtp"
	"time"

	"harmony/config"
	"harmony/errors"
	"harmony/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a plaintext password against its stored hash.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateToken signs a JWT carrying the user id and role.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

// GetUserByEmail looks a user up by email.
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByPhoneNumber looks a user up by phone number.
func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("phone_number = ?", phoneNumber).First(&user).Error; err != nil {
		return models.User{}, errors.ErrUserNotFound
	}
	return user, nil
}

// CreateUser persists a new user with a hashed password.
func CreateUser(input models.User) (models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return models.User{}, errors.ErrUserAlreadyExists
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}
	input.Password = hashed

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}
	return input, nil
}

// SendBookingEmail sends a booking confirmation. Failures are logged by the
// caller and never fail the booking.
func SendBookingEmail(email string, bookingID uint, totalAmount float64, checkInDate, checkOutDate string) error {
	from := config.GetEnv("EMAIL_FROM")
	password := config.GetEnv("EMAIL_PASSWORD")
	host := "smtp.gmail.com"
	port := "587"

	to := []string{email}
	subject := "Subject: Booking confirmation\n"
	body := fmt.Sprintf(
		"Your booking #%d is confirmed.\nCheck-in: %s\nCheck-out: %s\nTotal amount: %s\n",
		bookingID, checkInDate, checkOutDate, formatCurrency(totalAmount),
	)
	msg := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("%.2f INR", amount)
}
