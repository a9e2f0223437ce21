package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyMaterial is an uploaded course resource record.
// Collection: studyMaterials
type StudyMaterial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SubjectName string             `bson:"subjectName" json:"subjectName"`
	SubjectCode string             `bson:"subjectCode" json:"subjectCode"`
	FacultyName string             `bson:"facultyName" json:"facultyName"`
	Type        string             `bson:"type" json:"type"`
	FileURL     string             `bson:"fileUrl" json:"fileUrl"`
}
