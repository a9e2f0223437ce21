package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ansh1vohra/edublog-server/models"
	"github.com/Ansh1vohra/edublog-server/services"
)

type studyMaterialBody struct {
	SubjectName string `json:"subjectName" binding:"required"`
	SubjectCode string `json:"subjectCode" binding:"required"`
	FacultyName string `json:"facultyName" binding:"required"`
	Type        string `json:"type" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"required"`
}

// ListStudyMaterialsHandler godoc
// @Summary      List study materials
// @Tags         studyMaterials
// @Produce      json
// @Success      200  {array}  models.StudyMaterial
// @Failure      500  {object}  ErrorResponse
// @Router       /studyMaterials [get]
func ListStudyMaterialsHandler(svc *services.StudyMaterialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		materials, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, materials)
	}
}

// GetStudyMaterialHandler godoc
// @Summary      Get a study material by id
// @Tags         studyMaterials
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  models.StudyMaterial
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /studyMaterials/{id} [get]
func GetStudyMaterialHandler(svc *services.StudyMaterialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, material)
	}
}

// CreateStudyMaterialHandler godoc
// @Summary      Add a study material
// @Tags         studyMaterials
// @Accept       json
// @Param        body  body  studyMaterialBody  true  "Study material"
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /studyMaterials [post]
func CreateStudyMaterialHandler(svc *services.StudyMaterialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body studyMaterialBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
			return
		}

		id, err := svc.Create(c.Request.Context(), &models.StudyMaterial{
			SubjectName: body.SubjectName,
			SubjectCode: body.SubjectCode,
			FacultyName: body.FacultyName,
			Type:        body.Type,
			FileURL:     body.FileURL,
		})
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Study material added",
			"id":      id.Hex(),
		})
	}
}

// DeleteStudyMaterialHandler godoc
// @Summary      Delete a study material
// @Tags         studyMaterials
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /studyMaterials/{id} [delete]
func DeleteStudyMaterialHandler(svc *services.StudyMaterialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "Study material deleted"})
	}
}
