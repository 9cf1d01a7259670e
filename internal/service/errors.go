package service

import "errors"

// Not-found class failures, mapped to 404 by handlers.
var (
	ErrNoActiveMembership = errors.New("no active membership found")
	ErrPerkNotFound       = errors.New("perk not found in your membership plan")
	ErrRoomNotFound       = errors.New("meeting room not found")
	ErrPlanNotFound       = errors.New("membership plan not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

// rejectionError marks a business-rule rejection. Handlers turn these into
// 400 responses carrying the exact reason; anything else is a 500.
type rejectionError struct {
	reason string
}

func (e *rejectionError) Error() string {
	return e.reason
}

func Reject(reason string) error {
	return &rejectionError{reason: reason}
}

func IsRejection(err error) bool {
	var r *rejectionError
	return errors.As(err, &r)
}
