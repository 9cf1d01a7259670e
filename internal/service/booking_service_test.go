package service

import (
	"testing"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBookingOverlaps(t *testing.T) {
	tests := []struct {
		name          string
		existingStart string
		existingEnd   string
		newStart      string
		newEnd        string
		want          bool
	}{
		{"new start inside existing", "10:00", "11:00", "10:30", "11:30", true},
		{"new end inside existing", "10:00", "11:00", "09:30", "10:30", true},
		{"new contains existing", "10:00", "11:00", "09:00", "12:00", true},
		{"identical slot", "10:00", "11:00", "10:00", "11:00", true},
		{"back to back after", "10:00", "11:00", "11:00", "12:00", false},
		{"back to back before", "10:00", "11:00", "09:00", "10:00", false},
		{"fully before", "10:00", "11:00", "08:00", "09:00", false},
		{"fully after", "10:00", "11:00", "13:00", "14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bookingOverlaps(tt.existingStart, tt.existingEnd, tt.newStart, tt.newEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasBookingConflict(t *testing.T) {
	existing := []models.RoomBooking{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "14:00", EndTime: "16:00"},
	}

	assert.False(t, hasBookingConflict(existing, "10:00", "11:00"))
	assert.False(t, hasBookingConflict(existing, "12:00", "14:00"))
	assert.True(t, hasBookingConflict(existing, "15:00", "17:00"))
	assert.True(t, hasBookingConflict(existing, "09:30", "09:45"))
	assert.False(t, hasBookingConflict(nil, "09:00", "17:00"))
}
