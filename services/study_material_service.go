package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ansh1vohra/edublog-server/models"
)

// StudyMaterialService encapsulates business logic for study materials.
type StudyMaterialService struct {
	materials StudyMaterialStore
}

func NewStudyMaterialService(materials StudyMaterialStore) *StudyMaterialService {
	return &StudyMaterialService{materials: materials}
}

func (s *StudyMaterialService) List(ctx context.Context) ([]models.StudyMaterial, error) {
	return s.materials.List(ctx)
}

func (s *StudyMaterialService) GetByID(ctx context.Context, hexID string) (*models.StudyMaterial, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	m, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *StudyMaterialService) Create(ctx context.Context, m *models.StudyMaterial) (primitive.ObjectID, error) {
	return s.materials.Insert(ctx, m)
}

func (s *StudyMaterialService) DeleteByID(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := s.materials.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMaterialNotFound
	}
	return nil
}
