package booking

import (
	"context"
	"fmt"
	"time"

	"beautyspa/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const confirmKeyPrefix = "confirm:"

// Confirm turns a fully staged session into a persisted appointment. A second
// confirm within the cooldown window is rejected before any persistence work
// happens; the cooldown key is left in place on failure so a retry storm
// cannot double-book.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage == models.StageConfirmed {
		return nil, NewStageError("this session has already been confirmed")
	}
	if session.Stage != models.StageCustomerInfo {
		return nil, NewStageError("enter customer details before confirming")
	}
	if session.Selection == nil || session.Customer == nil || session.SelectedStaffID == "" {
		return nil, NewStageError("session is missing selection, staff or customer details")
	}

	ok, err := s.Cache.SetNX(ctx, confirmKeyPrefix+sessionID, 1, s.Cooldown).Result()
	if err != nil {
		// A broken cache must not block confirmations.
		s.Logger.Warn("confirm cooldown check failed",
			zap.String("sessionId", sessionID), zap.Error(err))
	} else if !ok {
		return nil, NewCooldownError()
	}

	svc, err := s.Services.GetByID(ctx, session.Selection.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service for confirmation: %w", err)
	}
	slot, err := s.Slots.GetByID(ctx, session.Selection.TimeSlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to load time slot for confirmation: %w", err)
	}
	start, err := CombineDateTime(session.Selection.Date, slot.StartTime)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("cannot schedule slot %q on %q", slot.SlotID, session.Selection.Date))
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		FullName:        session.Customer.FullName,
		PhoneNumber:     session.Customer.PhoneNumber,
		Email:           session.Customer.Email,
		AppointmentDate: start,
		EndTime:         start.Add(time.Duration(s.DurationMinutes) * time.Minute),
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		TimeSlotID:      slot.SlotID,
		StaffID:         session.SelectedStaffID,
		Notes:           session.Customer.Notes,
		Price:           svc.Price,
		Status:          models.AppointmentPending,
		IsActive:        true,
	}

	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	session.Stage = models.StageConfirmed
	session.AppointmentID = appt.ID
	if err := s.save(ctx, session); err != nil {
		// The appointment exists; losing the session update is recoverable.
		s.Logger.Error("appointment created but session update failed",
			zap.String("sessionId", sessionID),
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}

	s.Logger.Info("appointment confirmed",
		zap.String("sessionId", sessionID),
		zap.String("appointmentId", appt.ID),
		zap.String("staffId", appt.StaffID))
	return appt, nil
}
