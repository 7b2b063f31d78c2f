// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"

	"beautyspa/database"
	"beautyspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository provides access to the staff roster.
type StaffRepository interface {
	// GetRoster returns the roster, optionally narrowed to staff tagged with a
	// service id. An empty serviceID returns everyone.
	GetRoster(ctx context.Context, serviceID string) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoStaffRepo{
		coll: db.Collection("staff"),
	}
}
