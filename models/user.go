package models

import (
	"time"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"unique"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        int       `json:"role"`   // 1: customer, 2: admin, 3: receptionist
	Status      int       `json:"status"` // 0: inactive, 1: active
	AdminID     *uint     `json:"adminId,omitempty"` // receptionists belong to an admin
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
