package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ansh1vohra/edublog-server/models"
)

type StudyMaterialRepository struct {
	col *mongo.Collection
}

func NewStudyMaterialRepository(db *mongo.Database) *StudyMaterialRepository {
	return &StudyMaterialRepository{col: db.Collection("studyMaterials")}
}

func (r *StudyMaterialRepository) List(ctx context.Context) ([]models.StudyMaterial, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	materials := make([]models.StudyMaterial, 0)
	if err := cur.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *StudyMaterialRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.StudyMaterial, error) {
	var m models.StudyMaterial
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StudyMaterialRepository) Insert(ctx context.Context, m *models.StudyMaterial) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// DeleteByID removes a material and reports how many documents were deleted.
func (r *StudyMaterialRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
