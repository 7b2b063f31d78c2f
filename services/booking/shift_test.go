package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyShift(t *testing.T) {
	tests := []struct {
		startTime string
		want      Shift
	}{
		{"06:00", ShiftMorning},
		{"09:30", ShiftMorning},
		{"11:59", ShiftMorning},
		{"12:00", ShiftAfternoon},
		{"15:00", ShiftAfternoon},
		{"17:59", ShiftAfternoon},
		{"18:00", ShiftEvening},
		{"21:30", ShiftEvening},
		{"23:59", ShiftEvening},
		{"00:00", ShiftEvening},
		{"05:59", ShiftEvening},
	}
	for _, tc := range tests {
		t.Run(tc.startTime, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyShift(tc.startTime))
		})
	}
}

func TestClassifyShiftMalformedInput(t *testing.T) {
	for _, input := range []string{"", "abc", "??:30", "noon", ":15"} {
		assert.Equal(t, ShiftEvening, ClassifyShift(input), "input %q", input)
	}
}

func TestClassifyShiftTotal(t *testing.T) {
	// Every hour of the day lands in exactly one bucket.
	for hour := 0; hour < 24; hour++ {
		shift := ClassifyShift(fmt.Sprintf("%02d:00", hour))
		switch {
		case hour >= 6 && hour < 12:
			assert.Equal(t, ShiftMorning, shift, "hour %d", hour)
		case hour >= 12 && hour < 18:
			assert.Equal(t, ShiftAfternoon, shift, "hour %d", hour)
		default:
			assert.Equal(t, ShiftEvening, shift, "hour %d", hour)
		}
	}
}
