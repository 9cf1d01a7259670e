package models

import "time"

type MeetingRoom struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"unique;not null"`
	Location   string    `json:"location"`
	Capacity   int       `json:"capacity" gorm:"not null"`
	HourlyRate float64   `json:"hourly_rate" gorm:"not null"`
	Amenities  string    `json:"amenities"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type RoomBooking struct {
	ID                uint          `json:"id" gorm:"primaryKey"`
	RoomID            uint          `json:"room_id" gorm:"not null;index"`
	UserID            uint          `json:"user_id" gorm:"not null;index"`
	MembershipID      *uint         `json:"membership_id"`
	PerkUsageID       *uint         `json:"perk_usage_id"`
	BookingDate       time.Time     `json:"booking_date" gorm:"type:date;not null;index"`
	StartTime         string        `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime           string        `json:"end_time" gorm:"type:varchar(5);not null"`
	Duration          float64       `json:"duration" gorm:"not null"`
	NumberOfAttendees int           `json:"number_of_attendees"`
	Purpose           string        `json:"purpose"`
	Notes             string        `json:"notes"`
	Status            BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalCharge       float64       `json:"total_charge" gorm:"default:0"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type RoomRequest struct {
	Name       string  `json:"name" validate:"required"`
	Location   string  `json:"location"`
	Capacity   int     `json:"capacity" validate:"required,gt=0"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	Amenities  string  `json:"amenities"`
	IsActive   *bool   `json:"is_active"`
}

type CreateBookingRequest struct {
	RoomID            uint    `json:"room_id" validate:"required"`
	BookingDate       string  `json:"booking_date" validate:"required"`
	StartTime         string  `json:"start_time" validate:"required,hhmm"`
	EndTime           string  `json:"end_time" validate:"required,hhmm"`
	Duration          float64 `json:"duration" validate:"required,gt=0"`
	NumberOfAttendees int     `json:"number_of_attendees"`
	Purpose           string  `json:"purpose"`
	Notes             string  `json:"notes"`
}
