package models

import "time"

// Customer covers walk-in customers and guests who are not registered users.
type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company"`
	Notes        string    `json:"notes"`
	HostUserID   *uint     `json:"host_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GuestVisit struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"customer_id" gorm:"not null;index"`
	CheckedInAt time.Time `json:"checked_in_at" gorm:"not null"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomerRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Notes      string `json:"notes"`
	HostUserID *uint  `json:"host_user_id"`
}

type CheckInRequest struct {
	Notes string `json:"notes"`
}
