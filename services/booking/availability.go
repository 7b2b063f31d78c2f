package booking

import (
	"context"
	"sync"
	"time"

	"beautyspa/models"

	"go.uber.org/zap"
)

// ConflictChecker answers whether a staff member is free for the window
// starting at the requested moment. Backed by the appointment store in
// production; tests supply doubles.
type ConflictChecker interface {
	IsAvailable(ctx context.Context, staffID string, start time.Time, durationMinutes int) (bool, error)
}

// AvailabilityChecker fans one conflict query out per candidate and joins on
// all of them. Queries are independent: one failing marks only that member
// unavailable and never cancels its siblings.
type AvailabilityChecker struct {
	Conflicts ConflictChecker
	Logger    *zap.Logger
}

// Check returns availability keyed by staff id. It always waits for every
// query to settle before returning.
func (c *AvailabilityChecker) Check(ctx context.Context, staff []models.StaffMember, start time.Time, durationMinutes int) map[string]bool {
	resultsCh := make(chan models.AvailabilityResult, len(staff))
	var wg sync.WaitGroup

	for _, member := range staff {
		wg.Add(1)
		go func(member models.StaffMember) {
			defer wg.Done()
			available, err := c.Conflicts.IsAvailable(ctx, member.ID, start, durationMinutes)
			if err != nil {
				if c.Logger != nil {
					c.Logger.Warn("availability check failed, treating staff as busy",
						zap.String("staffId", member.ID),
						zap.Error(err))
				}
				available = false
			}
			resultsCh <- models.AvailabilityResult{StaffID: member.ID, Available: available}
		}(member)
	}

	wg.Wait()
	close(resultsCh)

	availability := make(map[string]bool, len(staff))
	for res := range resultsCh {
		availability[res.StaffID] = res.Available
	}
	return availability
}

// RepoConflictChecker adapts the appointment repository to ConflictChecker.
type RepoConflictChecker struct {
	Repo AppointmentStore
}

func (r *RepoConflictChecker) IsAvailable(ctx context.Context, staffID string, start time.Time, durationMinutes int) (bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	conflict, err := r.Repo.HasConflict(ctx, staffID, start, end)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
