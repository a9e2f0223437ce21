package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ansh1vohra/edublog-server/media"
	"github.com/Ansh1vohra/edublog-server/services"
)

// ErrorResponse is the common error envelope.
type ErrorResponse struct {
	Error string `json:"error" example:"Blog not found"`
}

// MessageResponse is the common plain-message envelope.
type MessageResponse struct {
	Message string `json:"message" example:"OTP sent successfully"`
}

// writeServiceError maps a service failure onto the response status:
// malformed input and conflicts are the client's fault (400), missing
// records are 404, anything else is a 500 with the raw message.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, media.ErrUnsupportedFormat),
		errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrAuthorNameTaken):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrBlogNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrMaterialNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
