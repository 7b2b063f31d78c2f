package booking

import (
	"context"
	"time"

	"beautyspa/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Collaborator lookups the booking engine depends on. Production wiring uses
// the mongo repositories; tests use doubles.

// StaffDirectory looks up the roster for a service.
type StaffDirectory interface {
	GetRoster(ctx context.Context, serviceID string) ([]models.StaffMember, error)
}

// ScheduleDirectory looks up work schedules for a day.
type ScheduleDirectory interface {
	GetByDate(ctx context.Context, date string) ([]models.WorkSchedule, error)
}

// ServiceCatalog looks up services.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

// SlotCatalog looks up time slots.
type SlotCatalog interface {
	GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
}

// CapacityProvider reports remaining capacity for a (date, service, slot).
type CapacityProvider interface {
	GetSlotCapacity(ctx context.Context, date, serviceID, timeSlotID string) (*models.SlotCapacity, error)
}

// AppointmentStore is the slice of the appointment repository the booking
// engine needs: persisting confirmations and answering conflict queries.
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	HasConflict(ctx context.Context, staffID string, start, end time.Time) (bool, error)
}

// StaffResolver runs the eligibility and availability pipeline.
type StaffResolver interface {
	Resolve(ctx context.Context, req ResolveRequest) models.StaffResolution
}

// BookingSessionService drives a customer's booking session from first
// selection through confirmation.
type BookingSessionService interface {
	CreateSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SetSelection(ctx context.Context, sessionID string, sel models.BookingSelection, search string) (*models.BookingSession, error)
	ChooseStaff(ctx context.Context, sessionID, staffID string) (*models.BookingSession, error)
	SetCustomer(ctx context.Context, sessionID string, info models.CustomerInfo) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService on top of
// Redis-held sessions.
type DefaultBookingSessionService struct {
	Resolver     StaffResolver
	Services     ServiceCatalog
	Slots        SlotCatalog
	Capacity     CapacityProvider
	Appointments AppointmentStore
	Presenter    PresentationOrder
	Cache        *redis.Client
	SessionTTL   time.Duration
	Cooldown     time.Duration
	// DurationMinutes is the fixed conflict window used at confirmation; it
	// intentionally does not track the service's own duration.
	DurationMinutes int
	Logger          *zap.Logger
}
