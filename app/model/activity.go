package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityCreated       = "created"
	ActivityUpdated       = "updated"
	ActivityStatusChanged = "status_changed"
	ActivityDeleted       = "deleted"
)

// Activity is one entry in a procurement request's history trail, stored
// as a Mongo document alongside the Postgres record it describes.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID string             `bson:"requestId" json:"request_id"`
	Action    string             `bson:"action" json:"action"`
	ActorName string             `bson:"actorName" json:"actor_name"`
	ActorRole Role               `bson:"actorRole" json:"actor_role"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
