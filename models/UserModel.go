package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

// StoredUser is the account document backing signup and login. The password
// hash never leaves the process as JSON.
type StoredUser struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Public strips the credential fields for use in responses and tokens.
func (u StoredUser) Public() User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email}
}

// The misspelling is the canonical marker for unauthenticated comment
// authors and is relied on by clients that filter anonymous content.
const (
	AnonymousName  = "annonymous"
	AnonymousEmail = "annonymous@tipestry.com"
)

// AnonymousUser synthesizes the placeholder identity attached to comments
// posted without an authenticated or supplied user.
func AnonymousUser() User {
	return User{
		ID:    primitive.NewObjectID(),
		Name:  AnonymousName,
		Email: AnonymousEmail,
	}
}
