// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"time"

	"beautyspa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *mongoScheduleRepo) GetByDate(ctx context.Context, date string) ([]models.WorkSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// workDate may be stored as a bare day or a full timestamp, so match on
	// the day prefix.
	filter := bson.M{"workDate": bson.M{"$regex": primitive.Regex{Pattern: "^" + date}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.WorkSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
