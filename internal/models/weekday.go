package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a 7-bit set of weekdays (bit 0 = Sunday ... bit 6 = Saturday).
// An empty set and a full set both mean "every day".
type WeekdaySet uint8

const allWeekdays WeekdaySet = 0x7F

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// ParseWeekdaySet builds a set from weekday integers (0=Sunday ... 6=Saturday).
func ParseWeekdaySet(days []int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, d := range days {
		if d < 0 || d > 6 {
			return 0, fmt.Errorf("invalid weekday %d: must be between 0 and 6", d)
		}
		s |= 1 << uint(d)
	}
	return s, nil
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Unrestricted reports whether the set places no restriction on weekdays.
func (s WeekdaySet) Unrestricted() bool {
	return s == 0 || s == allWeekdays
}

// Days returns the members in calendar order, Sunday through Saturday.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

func (s WeekdaySet) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *WeekdaySet) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*s = WeekdaySet(v)
		return nil
	case nil:
		*s = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", src)
	}
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	days := make([]int, 0, 7)
	for _, d := range s.Days() {
		days = append(days, int(d))
	}
	return json.Marshal(days)
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var days []int
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	parsed, err := ParseWeekdaySet(days)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
