package dto

// RegisterRequest creates a customer account; staff accounts are created by
// an admin through /users.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token and the user's role.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	Role        int    `json:"role"`
}

// CreateStaffRequest lets an admin create a receptionist account.
type CreateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}
