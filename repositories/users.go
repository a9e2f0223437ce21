package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ansh1vohra/edublog-server/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert stores a new user. Uniqueness of userMail and authorName is
// enforced by the collection's unique indexes; callers should check the
// returned error with mongo.IsDuplicateKeyError.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByMail returns the user with the given mail address.
func (r *UserRepository) FindByMail(ctx context.Context, userMail string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"userMail": userMail}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByMails returns all users whose mail address is in the given set.
// Used to attach author names to a blog listing in one query.
func (r *UserRepository) FindByMails(ctx context.Context, userMails []string) ([]models.User, error) {
	if len(userMails) == 0 {
		return []models.User{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"userMail": bson.M{"$in": userMails}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]models.User, 0, len(userMails))
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateAuthorName renames the author behind userMail and returns the
// updated document. mongo.ErrNoDocuments means no such user; a duplicate
// key error means the new name already belongs to someone else.
func (r *UserRepository) UpdateAuthorName(ctx context.Context, userMail, authorName string) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"userMail": userMail},
		bson.M{"$set": bson.M{"authorName": authorName}},
		opts,
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateAuthorImg sets the profile image URL and returns the updated document.
func (r *UserRepository) UpdateAuthorImg(ctx context.Context, userMail, imageURL string) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"userMail": userMail},
		bson.M{"$set": bson.M{"authorImg": imageURL}},
		opts,
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
