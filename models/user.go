package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an author profile, keyed by mail address.
// Collection: users (unique indexes on userMail and authorName)
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserMail   string             `bson:"userMail" json:"userMail"`
	AuthorName string             `bson:"authorName" json:"authorName"`
	AuthorImg  string             `bson:"authorImg" json:"authorImg"`
}
