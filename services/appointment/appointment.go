// File: services/appointment/appointment.go
package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	appointmentRepo "beautyspa/database/repository/appointment"
	"beautyspa/models"

	"go.uber.org/zap"
)

// AppointmentService covers appointment lookups and customer cancellation.
type AppointmentService interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByStaff(ctx context.Context, staffID string) ([]models.Appointment, error)
	ListByDay(ctx context.Context, date string) ([]models.Appointment, error)
	Cancel(ctx context.Context, id, reason string) (*models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService on the mongo
// repository.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}

// NewDefaultAppointmentService constructs an appointment service.
func NewDefaultAppointmentService(appts appointmentRepo.AppointmentRepository, logger *zap.Logger) *DefaultAppointmentService {
	return &DefaultAppointmentService{Appointments: appts, Logger: logger}
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Appointments.GetByID(ctx, id)
}

func (s *DefaultAppointmentService) ListByStaff(ctx context.Context, staffID string) ([]models.Appointment, error) {
	return s.Appointments.ListByStaff(ctx, staffID)
}

// ListByDay returns the day's active appointments in start-time order.
func (s *DefaultAppointmentService) ListByDay(ctx context.Context, date string) ([]models.Appointment, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.Appointments.ListByDay(ctx, day, day.Add(24*time.Hour))
}

// Cancel sets an appointment to cancelled. Already-cancelled, completed and
// past appointments are rejected; the reason is appended to the notes so the
// front desk can see why the slot freed up.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, reason string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment %q not found: %w", id, err)
	}

	switch appt.Status {
	case models.AppointmentCancelled:
		return nil, fmt.Errorf("appointment %q is already cancelled", id)
	case models.AppointmentCompleted:
		return nil, fmt.Errorf("appointment %q is already completed", id)
	}
	if appt.AppointmentDate.Before(time.Now()) {
		return nil, fmt.Errorf("appointment %q is in the past and cannot be cancelled", id)
	}

	appt.Status = models.AppointmentCancelled
	note := "CANCELLED"
	if strings.TrimSpace(reason) != "" {
		note = "CANCELLED: " + strings.TrimSpace(reason)
	}
	if appt.Notes != "" {
		appt.Notes = appt.Notes + " | " + note
	} else {
		appt.Notes = note
	}

	if err := s.Appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment %q: %w", id, err)
	}
	s.Logger.Info("appointment cancelled",
		zap.String("appointmentId", id),
		zap.String("staffId", appt.StaffID))
	return appt, nil
}
