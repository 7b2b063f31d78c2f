// File: database/repository/staff/staff_mongo.go
package staffRepo

import (
	"context"
	"time"

	"beautyspa/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoStaffRepo) GetRoster(ctx context.Context, serviceID string) ([]models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if serviceID != "" {
		filter["serviceIds"] = serviceID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.StaffMember
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var member models.StaffMember
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}
