package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ansh1vohra/edublog-server/services"
)

type commentBody struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author" binding:"required"`
}

// CreateCommentHandler godoc
// @Summary      Add a comment to a blog post
// @Tags         comments
// @Accept       json
// @Param        postId  path  string       true  "Blog post ObjectID"
// @Param        body    body  commentBody  true  "Comment"
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /comments/posts/{postId}/comments [post]
func CreateCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body commentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text and author are required."})
			return
		}

		commentID, err := svc.Create(c.Request.Context(), c.Param("postId"), body.Text, body.Author)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Comment created successfully",
			"commentId": commentID.Hex(),
		})
	}
}

// AddReplyHandler godoc
// @Summary      Append a reply to a comment
// @Tags         comments
// @Accept       json
// @Param        commentId  path  string       true  "Comment ObjectID"
// @Param        body       body  commentBody  true  "Reply"
// @Produce      json
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/commentReply/{commentId}/replies [post]
func AddReplyHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body commentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text and author are required."})
			return
		}

		if err := svc.AddReply(c.Request.Context(), c.Param("commentId"), body.Text, body.Author); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, MessageResponse{Message: "Reply added successfully"})
	}
}

// ListCommentsHandler godoc
// @Summary      List comments for a blog post
// @Tags         comments
// @Param        postId  path  string  true  "Blog post ObjectID"
// @Produce      json
// @Success      200  {array}  models.Comment
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /comments/posts/{postId}/comments [get]
func ListCommentsHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := svc.ListByPost(c.Request.Context(), c.Param("postId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}
