package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to a blog post and carries its replies inline.
// Collection: comments
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	Text      string             `bson:"text" json:"text"`
	Author    string             `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Replies   []Reply            `bson:"replies" json:"replies"`
}

// Reply is embedded in Comment.replies in append order. It has no identity
// of its own outside the parent comment.
type Reply struct {
	Text      string    `bson:"text" json:"text"`
	Author    string    `bson:"author" json:"author"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
