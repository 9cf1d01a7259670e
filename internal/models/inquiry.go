package models

import "time"

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryClosed     InquiryStatus = "closed"
)

type Inquiry struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	FullName  string        `json:"full_name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null"`
	Subject   string        `json:"subject" gorm:"not null"`
	Message   string        `json:"message" gorm:"not null"`
	Status    InquiryStatus `json:"status" gorm:"not null;default:'new'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type InquiryRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Subject        string `json:"subject" validate:"required"`
	Message        string `json:"message" validate:"required"`
	TurnstileToken string `json:"turnstile_token"`
}

type UpdateInquiryRequest struct {
	Status InquiryStatus `json:"status" validate:"required,oneof=new in_progress closed"`
}
