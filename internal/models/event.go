package models

import "time"

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	URL         string    `json:"url" gorm:"unique;not null"`
	Capacity    int       `json:"capacity" gorm:"default:0"`
	Price       float64   `json:"price" gorm:"default:0"`
	StartsAt    time.Time `json:"starts_at" gorm:"not null"`
	EndsAt      time.Time `json:"ends_at"`
	IsPublished bool      `json:"is_published" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegistrationStatus string

const (
	RegistrationConfirmed      RegistrationStatus = "confirmed"
	RegistrationPendingPayment RegistrationStatus = "pending_payment"
	RegistrationCancelled      RegistrationStatus = "cancelled"
)

type EventRegistration struct {
	ID         uint               `json:"id" gorm:"primaryKey"`
	EventID    uint               `json:"event_id" gorm:"not null;index"`
	UserID     uint               `json:"user_id" gorm:"not null;index"`
	TicketCode string             `json:"ticket_code" gorm:"unique;not null"`
	Status     RegistrationStatus `json:"status" gorm:"not null;default:'confirmed'"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type EventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	StartsAt    string  `json:"starts_at" validate:"required"`
	EndsAt      string  `json:"ends_at"`
	IsPublished *bool   `json:"is_published"`
}

type RegisterEventResponse struct {
	Registration EventRegistration `json:"registration"`
	CheckoutURL  string            `json:"checkout_url,omitempty"`
}
