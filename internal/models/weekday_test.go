package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdaySet(t *testing.T) {
	s, err := ParseWeekdaySet([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.True(t, s.Contains(time.Monday))
	assert.True(t, s.Contains(time.Friday))
	assert.False(t, s.Contains(time.Saturday))
	assert.False(t, s.Contains(time.Sunday))
}

func TestParseWeekdaySetRejectsOutOfRange(t *testing.T) {
	_, err := ParseWeekdaySet([]int{7})
	assert.Error(t, err)

	_, err = ParseWeekdaySet([]int{-1})
	assert.Error(t, err)
}

func TestWeekdaySetUnrestricted(t *testing.T) {
	empty := WeekdaySet(0)
	assert.True(t, empty.Unrestricted())

	full, err := ParseWeekdaySet([]int{0, 1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.True(t, full.Unrestricted())

	weekdays := NewWeekdaySet(time.Monday, time.Tuesday)
	assert.False(t, weekdays.Unrestricted())
}

func TestWeekdaySetString(t *testing.T) {
	s := NewWeekdaySet(time.Wednesday, time.Monday)
	assert.Equal(t, "Monday, Wednesday", s.String())
}

func TestWeekdaySetJSONRoundTrip(t *testing.T) {
	s := NewWeekdaySet(time.Monday, time.Friday)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, "[1,5]", string(data))

	var decoded WeekdaySet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

func TestWeekdaySetScan(t *testing.T) {
	var s WeekdaySet
	require.NoError(t, s.Scan(int64(0b0111110)))
	assert.True(t, s.Contains(time.Monday))
	assert.False(t, s.Contains(time.Sunday))

	require.NoError(t, s.Scan(nil))
	assert.True(t, s.Unrestricted())
}
