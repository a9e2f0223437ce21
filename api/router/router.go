package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ansh1vohra/edublog-server/api/handlers"
	"github.com/Ansh1vohra/edublog-server/api/middleware"
	"github.com/Ansh1vohra/edublog-server/config"
	"github.com/Ansh1vohra/edublog-server/db"
	"github.com/Ansh1vohra/edublog-server/repositories"
	"github.com/Ansh1vohra/edublog-server/services"
)

// New wires repositories, services and handlers onto a gin engine. The
// media uploader and mailer are built in main and injected here.
func New(files services.FileStore, mail services.MailSender) *gin.Engine {
	cfg := config.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	blogRepo := repositories.NewBlogRepository(db.Database())
	commentRepo := repositories.NewCommentRepository(db.Database())
	materialRepo := repositories.NewStudyMaterialRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())

	blogSvc := services.NewBlogService(blogRepo, userRepo, files, cfg.DefaultImages.BlogImageURL)
	commentSvc := services.NewCommentService(commentRepo)
	materialSvc := services.NewStudyMaterialService(materialRepo)
	userSvc := services.NewUserService(userRepo, files, mail, cfg.DefaultImages.AuthorImageURL)

	blogs := r.Group("/blogs")
	{
		blogs.POST("", handlers.CreateBlogHandler(blogSvc))
		blogs.GET("", handlers.ListBlogsHandler(blogSvc))
		blogs.GET("/blogsByUser/:userMail", handlers.ListBlogsByUserHandler(blogSvc))
		blogs.GET("/:id", handlers.GetBlogHandler(blogSvc))
	}

	comments := r.Group("/comments")
	{
		comments.POST("/posts/:postId/comments", handlers.CreateCommentHandler(commentSvc))
		comments.GET("/posts/:postId/comments", handlers.ListCommentsHandler(commentSvc))
		comments.POST("/commentReply/:commentId/replies", handlers.AddReplyHandler(commentSvc))
	}

	materials := r.Group("/studyMaterials")
	{
		materials.GET("", handlers.ListStudyMaterialsHandler(materialSvc))
		materials.POST("", handlers.CreateStudyMaterialHandler(materialSvc))
		materials.GET("/:id", handlers.GetStudyMaterialHandler(materialSvc))
		materials.DELETE("/:id", handlers.DeleteStudyMaterialHandler(materialSvc))
	}

	users := r.Group("/users")
	{
		users.POST("/storeUser", handlers.StoreUserHandler(userSvc))
		users.POST("/fetchUser", handlers.FetchUserHandler(userSvc))
		users.POST("/sendOTP",
			middleware.RateLimit(
				cfg.OTPRateLimit.MaxRequests,
				time.Duration(cfg.OTPRateLimit.WindowMinutes)*time.Minute,
			),
			handlers.SendOTPHandler(userSvc),
		)
		users.PUT("/updateAuthorName", handlers.UpdateAuthorNameHandler(userSvc))
		users.PUT("/updateAuthorImage", handlers.UpdateAuthorImageHandler(userSvc))
	}

	return r
}
