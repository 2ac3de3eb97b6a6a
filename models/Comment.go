package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment lives embedded in its parent post. User is a snapshot taken at
// comment time, not a reference to a stored user.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Text      string             `json:"text" bson:"text"`
	User      User               `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
