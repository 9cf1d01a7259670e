package models

import "time"

type PerkType string

const (
	PerkMeetingRoomHours PerkType = "meeting_room_hours"
	PerkPrintingCredits  PerkType = "printing_credits"
	PerkEventDiscount    PerkType = "event_discount"
	PerkLockerAccess     PerkType = "locker_access"
	PerkCoffeeVouchers   PerkType = "coffee_vouchers"
	PerkParkingSlots     PerkType = "parking_slots"
	PerkGuestPasses      PerkType = "guest_passes"
	PerkCustom           PerkType = "custom"
)

// SumsQuantity reports whether usage for this perk type accumulates the
// quantity_used column instead of counting redemptions. Hour-based perks
// can be consumed in fractional amounts.
func (t PerkType) SumsQuantity() bool {
	return t == PerkMeetingRoomHours
}

type MembershipPlan struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"unique;not null"`
	Description  string     `json:"description"`
	Price        float64    `json:"price" gorm:"not null"`
	DurationDays int        `json:"duration_days" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	Perks        []PlanPerk `json:"perks" gorm:"foreignKey:PlanID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type PlanPerk struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	PlanID      uint       `json:"plan_id" gorm:"not null;index"`
	Type        PerkType   `json:"type" gorm:"not null"`
	Name        string     `json:"name" gorm:"not null"`
	Quantity    float64    `json:"quantity" gorm:"not null"`
	Unit        string     `json:"unit"`
	MaxPerDay   *int       `json:"max_per_day"`
	MaxPerWeek  *int       `json:"max_per_week"`
	MaxPerMonth *int       `json:"max_per_month"`
	DaysOfWeek  WeekdaySet `json:"days_of_week" gorm:"type:smallint;default:0"`
	ValidFrom   string     `json:"valid_from" gorm:"type:varchar(5)"`
	ValidUntil  string     `json:"valid_until" gorm:"type:varchar(5)"`
	IsRecurring bool       `json:"is_recurring" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "active"
	MembershipPending MembershipStatus = "pending"
	MembershipExpired MembershipStatus = "expired"
)

type Membership struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	PlanID    uint             `json:"plan_id" gorm:"not null"`
	Plan      MembershipPlan   `json:"plan" gorm:"foreignKey:PlanID"`
	Status    MembershipStatus `json:"status" gorm:"not null;default:'pending'"`
	StartDate time.Time        `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreatePlanRequest struct {
	Name         string            `json:"name" validate:"required"`
	Description  string            `json:"description"`
	Price        float64           `json:"price" validate:"required,gt=0"`
	DurationDays int               `json:"duration_days" validate:"required,gt=0"`
	Perks        []PlanPerkRequest `json:"perks" validate:"dive"`
}

type UpdatePlanRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	DurationDays *int     `json:"duration_days" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"is_active"`
}

type PlanPerkRequest struct {
	Type        PerkType `json:"type" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Quantity    float64  `json:"quantity" validate:"required,gt=0"`
	Unit        string   `json:"unit"`
	MaxPerDay   *int     `json:"max_per_day" validate:"omitempty,gt=0"`
	MaxPerWeek  *int     `json:"max_per_week" validate:"omitempty,gt=0"`
	MaxPerMonth *int     `json:"max_per_month" validate:"omitempty,gt=0"`
	DaysOfWeek  []int    `json:"days_of_week" validate:"max=7,dive,min=0,max=6"`
	ValidFrom   string   `json:"valid_from" validate:"omitempty,hhmm"`
	ValidUntil  string   `json:"valid_until" validate:"omitempty,hhmm"`
	IsRecurring bool     `json:"is_recurring"`
}

type AssignMembershipRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	PlanID uint `json:"plan_id" validate:"required"`
}

type MembershipSummary struct {
	ID        uint             `json:"id"`
	PlanName  string           `json:"plan_name"`
	Status    MembershipStatus `json:"status"`
	StartDate time.Time        `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
}
