// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"beautyspa/database"
	"beautyspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository provides access to the service catalog.
type ServiceRepository interface {
	GetActive(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
