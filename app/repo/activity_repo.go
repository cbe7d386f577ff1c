package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
)

const activityCollection = "procurement_activities"

type ActivityRepository interface {
	Append(ctx context.Context, activity model.Activity) error
	FindByRequestID(ctx context.Context, requestID string) ([]model.Activity, error)
}

type ActivityRepo struct {
	mongoDB *mongo.Database
}

func NewActivityRepo(mongoDB *mongo.Database) *ActivityRepo {
	return &ActivityRepo{mongoDB: mongoDB}
}

func (r *ActivityRepo) Append(ctx context.Context, activity model.Activity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	coll := r.mongoDB.Collection(activityCollection)
	_, err := coll.InsertOne(ctx, activity)
	return err
}

func (r *ActivityRepo) FindByRequestID(ctx context.Context, requestID string) ([]model.Activity, error) {
	coll := r.mongoDB.Collection(activityCollection)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"requestId": requestID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := make([]model.Activity, 0)
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
