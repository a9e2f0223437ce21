package services

import (
	"context"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ansh1vohra/edublog-server/models"
)

// Store interfaces are implemented by the repositories package. Services
// depend on these rather than on *mongo.Collection so the business logic
// can be exercised with in-memory fakes.

type BlogStore interface {
	Insert(ctx context.Context, b *models.BlogPost) (primitive.ObjectID, error)
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	ListByUserMail(ctx context.Context, userMail string) ([]models.BlogPost, error)
}

type CommentStore interface {
	Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error)
	PushReply(ctx context.Context, commentID primitive.ObjectID, reply models.Reply) (int64, error)
	ListByPostID(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
}

type StudyMaterialStore interface {
	List(ctx context.Context) ([]models.StudyMaterial, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.StudyMaterial, error)
	Insert(ctx context.Context, m *models.StudyMaterial) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindByMail(ctx context.Context, userMail string) (*models.User, error)
	FindByMails(ctx context.Context, userMails []string) ([]models.User, error)
	UpdateAuthorName(ctx context.Context, userMail, authorName string) (*models.User, error)
	UpdateAuthorImg(ctx context.Context, userMail, imageURL string) (*models.User, error)
}

// FileStore is the media upload adapter contract: store the file, hand back
// its public URL.
type FileStore interface {
	Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
}

// MailSender is the notification adapter contract used for OTP delivery.
type MailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
