package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ansh1vohra/edublog-server/models"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

// Insert stores a new comment with an empty replies array and returns its id.
func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Replies == nil {
		c.Replies = []models.Reply{}
	}
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// PushReply appends a reply to the end of the comment's replies array and
// reports how many documents were modified (0 when the comment is missing).
func (r *CommentRepository) PushReply(ctx context.Context, commentID primitive.ObjectID, reply models.Reply) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{"$push": bson.M{"replies": reply}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ListByPostID returns all comments attached to the given post, in storage order.
func (r *CommentRepository) ListByPostID(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	cur, err := r.col.Find(ctx, bson.M{"postId": postID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := make([]models.Comment, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
