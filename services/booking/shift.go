package booking

import (
	"strconv"
	"strings"
)

// Shift is the named bucket a time slot's start hour falls into.
type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftEvening   Shift = "Evening"
)

// ClassifyShift maps a 24-hour "HH:MM" start time to its shift bucket:
// [6,12) Morning, [12,18) Afternoon, Evening otherwise. Input validation is
// the caller's job; anything unparseable lands in the default bucket.
func ClassifyShift(startTime string) Shift {
	hourPart, _, _ := strings.Cut(startTime, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return ShiftEvening
	}
	switch {
	case hour >= 6 && hour < 12:
		return ShiftMorning
	case hour >= 12 && hour < 18:
		return ShiftAfternoon
	default:
		return ShiftEvening
	}
}
