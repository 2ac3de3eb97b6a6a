package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the primary content entity users vote on and comment on.
type Post struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	ResourceURL string             `json:"resourceUrl" bson:"resourceUrl"`
	Description string             `json:"description" bson:"description"`
	UpVotes     int                `json:"upVotes" bson:"upVotes"`
	DownVotes   int                `json:"downVotes" bson:"downVotes"`
	Tags        []string           `json:"tags" bson:"tags"`
	Comments    []Comment          `json:"comments" bson:"comments"`
	Author      *User              `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
