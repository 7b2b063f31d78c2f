package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"beautyspa/models"
	"beautyspa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *DefaultBookingSessionService) load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// CreateSession starts a fresh booking session with nothing selected.
func (s *DefaultBookingSessionService) CreateSession(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Stage:     models.StageNoSelection,
		CreatedAt: time.Now(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current session snapshot.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.load(ctx, sessionID)
}

// SetSelection records the customer's (service, date, slot) choice and runs a
// staff resolution pass. Changing the selection invalidates any previously
// chosen staff member and supersedes any resolution still in flight: the most
// recently initiated pass wins, late arrivals are discarded.
func (s *DefaultBookingSessionService) SetSelection(ctx context.Context, sessionID string, sel models.BookingSelection, search string) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", sel.Date); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", sel.Date))
	}
	svc, err := s.Services.GetByID(ctx, sel.ServiceID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown service %q", sel.ServiceID))
	}
	slot, err := s.Slots.GetByID(ctx, sel.TimeSlotID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown time slot %q", sel.TimeSlotID))
	}
	if !slot.IsActive {
		return nil, NewValidationError(fmt.Sprintf("time slot %q is not open for booking", sel.TimeSlotID))
	}

	session.Selection = &sel
	session.SelectedStaffID = ""
	session.Resolution = nil
	session.Capacity = nil
	session.Stage = models.StageResolving
	session.ResolutionSeq++
	seq := session.ResolutionSeq
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	resolution := s.Resolver.Resolve(ctx, ResolveRequest{
		Service: *svc,
		Date:    sel.Date,
		Slot:    *slot,
		Search:  search,
	})

	capacity, err := s.Capacity.GetSlotCapacity(ctx, sel.Date, sel.ServiceID, sel.TimeSlotID)
	if err != nil {
		s.Logger.Warn("slot capacity lookup failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		capacity = nil
	}

	// Reload before applying: a newer selection may have started a newer pass
	// while this one was resolving.
	current, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.ResolutionSeq != seq {
		s.Logger.Info("discarding stale staff resolution",
			zap.String("sessionId", sessionID),
			zap.Uint64("staleSeq", seq),
			zap.Uint64("currentSeq", current.ResolutionSeq))
		return current, nil
	}

	arranged := resolution
	arranged.Candidates = s.presenter().Arrange(resolution.Candidates)
	current.Resolution = &arranged
	current.Capacity = capacity

	if len(arranged.Candidates) > 0 && arranged.AvailableCount > 0 && (capacity == nil || capacity.AvailableSlot > 0) {
		current.Stage = models.StageStaffListReady
	} else {
		// Keep the selection but stay short of a usable staff list so the
		// caller can render guidance from the resolution status.
		current.Stage = models.StageSelectionMade
	}

	if err := s.save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// ChooseStaff records the customer's staff pick. Picking a busy member is
// rejected rather than silently coerced.
func (s *DefaultBookingSessionService) ChooseStaff(ctx context.Context, sessionID, staffID string) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageStaffListReady && session.Stage != models.StageStaffChosen {
		return nil, NewStageError("select a service, date and time slot first")
	}
	if session.Resolution == nil {
		return nil, NewStageError("no staff list has been resolved for this session")
	}

	var picked *models.CandidateStaff
	for i := range session.Resolution.Candidates {
		if session.Resolution.Candidates[i].Staff.ID == staffID {
			picked = &session.Resolution.Candidates[i]
			break
		}
	}
	if picked == nil {
		return nil, NewValidationError(fmt.Sprintf("staff member %q is not in the candidate list", staffID))
	}
	if !picked.Available {
		return nil, NewStaffUnavailableError(staffID)
	}

	session.SelectedStaffID = staffID
	session.Stage = models.StageStaffChosen
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetCustomer records and validates the customer identity fields.
func (s *DefaultBookingSessionService) SetCustomer(ctx context.Context, sessionID string, info models.CustomerInfo) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageStaffChosen && session.Stage != models.StageCustomerInfo {
		return nil, NewStageError("choose a staff member before entering customer details")
	}

	if err := validateCustomerInfo(info); err != nil {
		return nil, err
	}

	session.Customer = &info
	session.Stage = models.StageCustomerInfo
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession discards the session entirely.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func validateCustomerInfo(info models.CustomerInfo) error {
	if strings.TrimSpace(info.FullName) == "" {
		return NewValidationError("full name is required")
	}
	if !utils.IsValidPhone(info.PhoneNumber) {
		return NewValidationError(fmt.Sprintf("invalid phone number %q", info.PhoneNumber))
	}
	if info.Email != "" && !utils.IsValidEmail(info.Email) {
		return NewValidationError(fmt.Sprintf("invalid email address %q", info.Email))
	}
	return nil
}

func (s *DefaultBookingSessionService) presenter() PresentationOrder {
	if s.Presenter == nil {
		return IdentityOrder{}
	}
	return s.Presenter
}
