// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"beautyspa/database"
	"beautyspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository persists bookings and answers conflict queries.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	ListByStaff(ctx context.Context, staffID string) ([]models.Appointment, error)
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	// CountForSlot counts active, non-cancelled bookings for a
	// (day, service, time slot) triple; used for the capacity gate.
	CountForSlot(ctx context.Context, dayStart, dayEnd time.Time, serviceID, timeSlotID string) (int, error)
	// HasConflict reports whether the staff member already has an active,
	// non-cancelled booking overlapping [start, end).
	HasConflict(ctx context.Context, staffID string, start, end time.Time) (bool, error)
	// CompleteBefore marks confirmed appointments older than the cutoff as
	// completed; returns the number updated.
	CompleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
