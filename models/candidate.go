package models

// AvailabilityResult is the outcome of one conflict check.
type AvailabilityResult struct {
	StaffID   string `json:"staffId"`
	Available bool   `json:"available"`
}

// CandidateStaff is a roster entry annotated for customer selection.
// A fresh list is built on every selection change; entries are never
// mutated in place.
type CandidateStaff struct {
	Staff     StaffMember `json:"staff"`
	Eligible  bool        `json:"eligible"`
	Available bool        `json:"available"`
}

// ResolutionStatus tells the caller how a staff resolution pass went, so an
// empty candidate list can be rendered differently depending on why it is
// empty.
type ResolutionStatus string

const (
	// ResolutionOK: all lookups succeeded; the candidate list is authoritative.
	ResolutionOK ResolutionStatus = "resolved"
	// ResolutionScheduleDegraded: the schedule lookup failed, so schedule
	// filtering was skipped for this pass and the list may be too broad.
	ResolutionScheduleDegraded ResolutionStatus = "scheduleLookupDegraded"
	// ResolutionRosterUnavailable: the roster lookup failed; the list is empty
	// but that says nothing about actual staffing.
	ResolutionRosterUnavailable ResolutionStatus = "rosterUnavailable"
)

// StaffResolution is the complete output of one resolution pass.
type StaffResolution struct {
	Status         ResolutionStatus `json:"status"`
	Candidates     []CandidateStaff `json:"candidates"`
	AvailableCount int              `json:"availableCount"`
}
