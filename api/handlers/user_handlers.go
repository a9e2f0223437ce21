package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ansh1vohra/edublog-server/logger"
	"github.com/Ansh1vohra/edublog-server/services"
)

type storeUserBody struct {
	UserMail   string `json:"userMail" binding:"required"`
	AuthorName string `json:"authorName" binding:"required"`
}

type fetchUserBody struct {
	UserMail string `json:"userMail" binding:"required"`
}

type sendOTPBody struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"OTP" binding:"required"`
}

// StoreUserHandler godoc
// @Summary      Create a user profile
// @Description  Creates a user with the default avatar. Duplicate mail or author name is rejected.
// @Tags         users
// @Accept       json
// @Param        body  body  storeUserBody  true  "User"
// @Produce      json
// @Success      201  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Router       /users/storeUser [post]
func StoreUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body storeUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		user, err := svc.Store(c.Request.Context(), body.UserMail, body.AuthorName)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// FetchUserHandler godoc
// @Summary      Fetch a user profile by mail address
// @Tags         users
// @Accept       json
// @Param        body  body  fetchUserBody  true  "Lookup"
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/fetchUser [post]
func FetchUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body fetchUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		user, err := svc.Fetch(c.Request.Context(), body.UserMail)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// SendOTPHandler godoc
// @Summary      Send an OTP mail
// @Description  Delivers the one-time code by mail. The code is never echoed back in the response.
// @Tags         users
// @Accept       json
// @Param        body  body  sendOTPBody  true  "Recipient and code"
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/sendOTP [post]
func SendOTPHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body sendOTPBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		if err := svc.SendOTP(c.Request.Context(), body.Email, body.OTP); err != nil {
			logger.Log.Errorf("failed to send OTP mail to %s: %v", body.Email, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error"})
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "OTP sent successfully"})
	}
}

// UpdateAuthorNameHandler godoc
// @Summary      Rename an author
// @Tags         users
// @Accept       json
// @Param        body  body  storeUserBody  true  "Mail address and new author name"
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/updateAuthorName [put]
func UpdateAuthorNameHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body storeUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		user, err := svc.UpdateAuthorName(c.Request.Context(), body.UserMail, body.AuthorName)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateAuthorImageHandler godoc
// @Summary      Update an author's profile image
// @Tags         users
// @Accept       mpfd
// @Param        userMail   formData  string  true  "Mail address"
// @Param        authorImg  formData  file    true  "Profile image (jpg/jpeg/png)"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/updateAuthorImage [put]
func UpdateAuthorImageHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userMail := c.PostForm("userMail")
		if userMail == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userMail is required"})
			return
		}
		image, err := c.FormFile("authorImg")
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "authorImg file is required"})
			return
		}

		user, err := svc.UpdateAuthorImage(c.Request.Context(), userMail, image)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    user,
			"message": "Profile photo updated successfully",
		})
	}
}
