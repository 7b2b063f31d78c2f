// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"beautyspa/database"
	"beautyspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimeSlotRepository provides access to the time-slot catalog.
type TimeSlotRepository interface {
	GetActive(ctx context.Context) ([]models.TimeSlot, error)
	GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTimeSlotRepo{
		coll: db.Collection("timeslots"),
	}
}
