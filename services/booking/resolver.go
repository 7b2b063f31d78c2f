package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"beautyspa/models"

	"go.uber.org/zap"
)

// ResolutionConfig controls which pipeline stages run. It is passed in
// explicitly so the pipeline stays a pure function of its inputs rather than
// reading ambient toggles.
type ResolutionConfig struct {
	ScheduleFiltering    bool
	ShiftFiltering       bool
	StrictSkillFiltering bool
	// DurationMinutes is the conflict window checked per candidate. The
	// product checks a fixed 60-minute window regardless of the service's own
	// duration; kept configurable, not derived.
	DurationMinutes int
}

// ResolveRequest is one (service, date, time slot) selection to resolve staff
// for. Search, when set, pre-filters candidates by full name.
type ResolveRequest struct {
	Service models.Service
	Date    string // "2006-01-02"
	Slot    models.TimeSlot
	Search  string
}

// DefaultStaffResolver runs the four-stage pipeline: shift classification,
// schedule filter, skill matcher, availability fan-out, then assembly.
type DefaultStaffResolver struct {
	Staff        StaffDirectory
	Schedules    ScheduleDirectory
	Skills       *SkillMatcher
	Availability *AvailabilityChecker
	Config       ResolutionConfig
	Logger       *zap.Logger
}

// Resolve always returns a (possibly empty) candidate list plus a status
// flag; recoverable lookup failures degrade the result instead of erroring.
func (r *DefaultStaffResolver) Resolve(ctx context.Context, req ResolveRequest) models.StaffResolution {
	status := models.ResolutionOK

	roster, err := r.Staff.GetRoster(ctx, req.Service.ID)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Error("roster lookup failed", zap.String("serviceId", req.Service.ID), zap.Error(err))
		}
		return models.StaffResolution{
			Status:     models.ResolutionRosterUnavailable,
			Candidates: []models.CandidateStaff{},
		}
	}

	// Inactive staff never reach customers, independent of any toggle.
	active := make([]models.StaffMember, 0, len(roster))
	for _, member := range roster {
		if member.ActiveResolved() {
			active = append(active, member)
		}
	}

	shift := ClassifyShift(req.Slot.StartTime)

	eligible := active
	if r.Config.ScheduleFiltering {
		schedules, err := r.Schedules.GetByDate(ctx, req.Date)
		if err != nil {
			// A failed lookup falls back to the unfiltered roster for this
			// pass. Distinct from zero matching entries, which is a hard
			// empty result inside FilterBySchedule.
			if r.Logger != nil {
				r.Logger.Warn("schedule lookup failed, skipping schedule filter",
					zap.String("date", req.Date), zap.Error(err))
			}
			status = models.ResolutionScheduleDegraded
		} else {
			eligible = FilterBySchedule(eligible, req.Date, shift, schedules, r.Config.ShiftFiltering)
		}
	}

	if r.Config.StrictSkillFiltering {
		eligible = r.Skills.Filter(eligible, req.Service)
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.StaffMember, 0, len(eligible))
		for _, member := range eligible {
			if strings.Contains(strings.ToLower(member.FullName), needle) {
				filtered = append(filtered, member)
			}
		}
		eligible = filtered
	}

	start, err := CombineDateTime(req.Date, req.Slot.StartTime)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Error("unparseable selection datetime",
				zap.String("date", req.Date), zap.String("startTime", req.Slot.StartTime), zap.Error(err))
		}
		return models.StaffResolution{Status: status, Candidates: []models.CandidateStaff{}}
	}

	availability := r.Availability.Check(ctx, eligible, start, r.Config.DurationMinutes)

	return assemble(eligible, availability, status)
}

// assemble annotates the eligible list with availability and partitions it
// available-first. The partition is stable: within each group the original
// roster order is preserved, and no secondary sort is applied.
func assemble(eligible []models.StaffMember, availability map[string]bool, status models.ResolutionStatus) models.StaffResolution {
	candidates := make([]models.CandidateStaff, 0, len(eligible))
	count := 0
	for _, member := range eligible {
		if availability[member.ID] {
			candidates = append(candidates, models.CandidateStaff{Staff: member, Eligible: true, Available: true})
			count++
		}
	}
	for _, member := range eligible {
		if !availability[member.ID] {
			candidates = append(candidates, models.CandidateStaff{Staff: member, Eligible: true, Available: false})
		}
	}
	return models.StaffResolution{
		Status:         status,
		Candidates:     candidates,
		AvailableCount: count,
	}
}

// CombineDateTime combines a "2006-01-02" day and "HH:MM" clock time into a
// local-time instant.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", date, clock), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", date, clock, err)
	}
	return t, nil
}
