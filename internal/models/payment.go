package models

import "time"

type PaymentKind string

const (
	PaymentKindMembership  PaymentKind = "membership"
	PaymentKindEventTicket PaymentKind = "event_ticket"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id" gorm:"not null;index"`
	Kind            PaymentKind `json:"kind" gorm:"not null"`
	ReferenceID     uint        `json:"reference_id" gorm:"not null"`
	MembershipID    *uint       `json:"membership_id"`
	Amount          float64     `json:"amount" gorm:"not null"`
	Currency        string      `json:"currency" gorm:"not null;default:'usd'"`
	StripeSessionID string      `json:"stripe_session_id" gorm:"unique;not null"`
	StripeIntentID  string      `json:"stripe_intent_id" gorm:"index"`
	Status          string      `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
