// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "beautyspa/database/repository/appointment"
	serviceRepo "beautyspa/database/repository/service"
	timeslotRepo "beautyspa/database/repository/timeslot"
	"beautyspa/models"

	"go.uber.org/zap"
)

// CatalogService exposes the public service and time-slot listings plus the
// remaining-capacity lookup used during booking.
type CatalogService interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	GetTimeSlots(ctx context.Context) ([]models.TimeSlot, error)
	GetSlotCapacity(ctx context.Context, date, serviceID, timeSlotID string) (*models.SlotCapacity, error)
}

// DefaultCatalogService implements CatalogService on the mongo repositories.
type DefaultCatalogService struct {
	Services     serviceRepo.ServiceRepository
	Slots        timeslotRepo.TimeSlotRepository
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}

// NewDefaultCatalogService constructs a catalog service.
func NewDefaultCatalogService(services serviceRepo.ServiceRepository, slots timeslotRepo.TimeSlotRepository, appts appointmentRepo.AppointmentRepository, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{Services: services, Slots: slots, Appointments: appts, Logger: logger}
}

// GetServices lists active services.
func (s *DefaultCatalogService) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.Services.GetActive(ctx)
}

// GetTimeSlots lists active slots ordered by start time.
func (s *DefaultCatalogService) GetTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	return s.Slots.GetActive(ctx)
}

// GetSlotCapacity reports how many bookings a slot can still take on a day:
// the slot's configured capacity minus the non-cancelled bookings already
// holding it.
func (s *DefaultCatalogService) GetSlotCapacity(ctx context.Context, date, serviceID, timeSlotID string) (*models.SlotCapacity, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	slot, err := s.Slots.GetByID(ctx, timeSlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to load time slot %q: %w", timeSlotID, err)
	}

	dayStart := day
	dayEnd := day.Add(24 * time.Hour)
	booked, err := s.Appointments.CountForSlot(ctx, dayStart, dayEnd, serviceID, timeSlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings for slot %q: %w", timeSlotID, err)
	}

	available := slot.Capacity - booked
	if available < 0 {
		available = 0
	}
	return &models.SlotCapacity{
		AvailableSlot: available,
		TotalSlot:     slot.Capacity,
	}, nil
}
