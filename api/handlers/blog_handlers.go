package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ansh1vohra/edublog-server/services"
)

type createBlogForm struct {
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
	UserMail string `form:"userMail" binding:"required"`
}

// CreateBlogHandler godoc
// @Summary      Create a blog post
// @Description  Creates a blog post from a multipart form. The blogImg file is optional; a placeholder image is used when it is absent.
// @Tags         blogs
// @Accept       mpfd
// @Param        title    formData  string  true   "Title"
// @Param        content  formData  string  true   "Content"
// @Param        userMail formData  string  true   "Author mail address"
// @Param        blogImg  formData  file    false  "Cover image (jpg/jpeg/png)"
// @Produce      json
// @Success      201  {object}  models.BlogPost
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form createBlogForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		// The image is optional; FormFile failing just means none was sent.
		image, err := c.FormFile("blogImg")
		if err != nil {
			image = nil
		}

		post, err := svc.Create(c.Request.Context(), services.CreateBlogInput{
			Title:    form.Title,
			Content:  form.Content,
			UserMail: form.UserMail,
			Image:    image,
		})
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// ListBlogsHandler godoc
// @Summary      List blog posts
// @Description  Lists all blog posts newest first, each with the author's display name attached.
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  services.BlogWithAuthor
// @Failure      500  {object}  ErrorResponse
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetBlogHandler godoc
// @Summary      Get a blog post by id
// @Tags         blogs
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  models.BlogPost
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListBlogsByUserHandler godoc
// @Summary      List blog posts by author
// @Tags         blogs
// @Param        userMail  path  string  true  "Author mail address"
// @Produce      json
// @Success      200  {array}  models.BlogPost
// @Failure      500  {object}  ErrorResponse
// @Router       /blogs/blogsByUser/{userMail} [get]
func ListBlogsByUserHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.ListByUser(c.Request.Context(), c.Param("userMail"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}
