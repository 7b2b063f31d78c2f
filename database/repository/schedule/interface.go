// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"beautyspa/database"
	"beautyspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository provides access to staff work schedules.
type ScheduleRepository interface {
	// GetByDate returns all schedule entries whose workDate falls on the given
	// "2006-01-02" day.
	GetByDate(ctx context.Context, date string) ([]models.WorkSchedule, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("work_schedules"),
	}
}
