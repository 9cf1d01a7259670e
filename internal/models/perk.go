package models

import "time"

// PerkUsage is an append-only log entry. Rows are never updated or deleted:
// every quota figure is recomputed from this log so that a replay of history
// always reproduces the current state.
type PerkUsage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	MembershipID uint      `json:"membership_id" gorm:"not null;index"`
	PerkID       uint      `json:"perk_id" gorm:"not null;index"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	QuantityUsed float64   `json:"quantity_used" gorm:"not null"`
	UsedAt       time.Time `json:"used_at" gorm:"not null;index"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type PerkStatus struct {
	PerkID            uint       `json:"perk_id"`
	Type              PerkType   `json:"type"`
	Name              string     `json:"name"`
	Quantity          float64    `json:"quantity"`
	Unit              string     `json:"unit"`
	DaysOfWeek        WeekdaySet `json:"days_of_week"`
	ValidFrom         string     `json:"valid_from,omitempty"`
	ValidUntil        string     `json:"valid_until,omitempty"`
	IsAvailable       bool       `json:"is_available"`
	UnavailableReason string     `json:"unavailable_reason,omitempty"`
	NextAvailableAt   *time.Time `json:"next_available_at,omitempty"`
	UsedToday         float64    `json:"used_today"`
	UsedThisWeek      float64    `json:"used_this_week"`
	UsedThisMonth     float64    `json:"used_this_month"`
	RemainingToday    *float64   `json:"remaining_today,omitempty"`
}

type PerkStatusResponse struct {
	Membership MembershipSummary `json:"membership"`
	Perks      []PerkStatus      `json:"perks"`
}

// RedeemPerkRequest covers both redemption variants. The generic path only
// uses Notes; the meeting-room-hours path requires the booking fields.
type RedeemPerkRequest struct {
	Notes             string  `json:"notes"`
	RoomID            uint    `json:"room_id"`
	BookingDate       string  `json:"booking_date"`
	StartTime         string  `json:"start_time" validate:"omitempty,hhmm"`
	EndTime           string  `json:"end_time" validate:"omitempty,hhmm"`
	Duration          float64 `json:"duration"`
	NumberOfAttendees int     `json:"number_of_attendees"`
	Purpose           string  `json:"purpose"`
}

type RedeemPerkResponse struct {
	Usage              PerkUsage    `json:"usage"`
	Booking            *RoomBooking `json:"booking,omitempty"`
	RemainingToday     *float64     `json:"remaining_today,omitempty"`
	RemainingThisWeek  *float64     `json:"remaining_this_week,omitempty"`
	RemainingThisMonth *float64     `json:"remaining_this_month,omitempty"`
}
