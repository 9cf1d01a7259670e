package models

import "time"

// ActivityLog is an append-only audit trail. Writes are best-effort and must
// never fail the operation that triggered them.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Action    string    `json:"action" gorm:"not null"`
	Entity    string    `json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
