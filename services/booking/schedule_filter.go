package booking

import (
	"strings"

	"beautyspa/models"
)

// fullDayMarkers are shift values managers use to mean "works the whole day".
var fullDayMarkers = []string{"full", "all day", "cả ngày"}

// shiftCompatible reports whether a schedule entry's free-text shift covers
// the requested shift. Matching is a case-insensitive substring check in
// either direction; full-day entries cover everything.
func shiftCompatible(entryShift string, requested Shift) bool {
	entry := strings.ToLower(strings.TrimSpace(entryShift))
	want := strings.ToLower(string(requested))
	if entry == "" {
		return false
	}
	for _, marker := range fullDayMarkers {
		if strings.Contains(entry, marker) {
			return true
		}
	}
	return strings.Contains(entry, want) || strings.Contains(want, entry)
}

// scheduleMatches applies the eligibility invariant for a single entry:
// workDate prefix-matches the requested day, the entry is active, not yet
// completed, and (when shift checking is on) shift-compatible.
func scheduleMatches(ws models.WorkSchedule, date string, shift Shift, checkShift bool) bool {
	if !ws.IsActive {
		return false
	}
	if strings.EqualFold(ws.Status, "completed") {
		return false
	}
	if !strings.HasPrefix(ws.WorkDate, date) {
		return false
	}
	if checkShift && !shiftCompatible(ws.Shift, shift) {
		return false
	}
	return true
}

// FilterBySchedule narrows the roster to staff with a matching work-schedule
// entry for the given day and shift. When no entry matches, the result is the
// empty list: a day/shift with no coverage yields no staff, it does not fall
// back to the unfiltered roster. (A failed schedule *lookup* is handled one
// level up and is a different path.)
func FilterBySchedule(staff []models.StaffMember, date string, shift Shift, schedules []models.WorkSchedule, checkShift bool) []models.StaffMember {
	scheduled := make(map[string]struct{}, len(schedules))
	for _, ws := range schedules {
		if scheduleMatches(ws, date, shift, checkShift) {
			scheduled[ws.UserID] = struct{}{}
		}
	}

	out := make([]models.StaffMember, 0, len(staff))
	for _, member := range staff {
		if _, ok := scheduled[member.ID]; ok {
			out = append(out, member)
		}
	}
	return out
}
