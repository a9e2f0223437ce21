package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ansh1vohra/edublog-server/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// Insert stores a new blog post and returns its generated id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.BlogPost) (primitive.ObjectID, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// ListAll returns every blog post, newest id first.
func (r *BlogRepository) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]models.BlogPost, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID returns a single blog post by its ObjectID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var b models.BlogPost
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByUserMail returns all posts written under the given mail address.
func (r *BlogRepository) ListByUserMail(ctx context.Context, userMail string) ([]models.BlogPost, error) {
	cur, err := r.col.Find(ctx, bson.M{"userMail": userMail})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]models.BlogPost, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
