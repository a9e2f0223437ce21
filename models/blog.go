package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a published blog entry.
// Collection: blogs
type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	UserMail  string             `bson:"userMail" json:"userMail"`
	BlogImg   string             `bson:"blogImg" json:"blogImg"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
