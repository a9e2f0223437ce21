package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ansh1vohra/edublog-server/models"
)

// UnknownAuthor is attached to a listed blog whose author record no longer
// exists.
const UnknownAuthor = "Unknown Author"

// BlogService encapsulates business logic for blog posts.
type BlogService struct {
	blogs           BlogStore
	users           UserStore
	files           FileStore
	defaultImageURL string
}

func NewBlogService(blogs BlogStore, users UserStore, files FileStore, defaultImageURL string) *BlogService {
	return &BlogService{
		blogs:           blogs,
		users:           users,
		files:           files,
		defaultImageURL: defaultImageURL,
	}
}

type CreateBlogInput struct {
	Title    string
	Content  string
	UserMail string
	Image    *multipart.FileHeader
}

// Create stores the optional image first, then inserts the post. An image
// uploaded before a failed insert is not deleted; the file is orphaned
// (known limitation).
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*models.BlogPost, error) {
	imageURL := s.defaultImageURL
	if in.Image != nil {
		url, err := s.files.Upload(ctx, "blog_images", in.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	post := &models.BlogPost{
		Title:     in.Title,
		Content:   in.Content,
		UserMail:  in.UserMail,
		BlogImg:   imageURL,
		CreatedAt: time.Now(),
	}
	id, err := s.blogs.Insert(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

// BlogWithAuthor is a blog post with the author's display name attached.
type BlogWithAuthor struct {
	models.BlogPost
	AuthorName string `json:"authorName"`
}

// List returns all posts newest first, with author names resolved in a
// single batched query over the distinct mail addresses.
func (s *BlogService) List(ctx context.Context) ([]BlogWithAuthor, error) {
	posts, err := s.blogs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(posts))
	mails := make([]string, 0, len(posts))
	for _, p := range posts {
		if !seen[p.UserMail] {
			seen[p.UserMail] = true
			mails = append(mails, p.UserMail)
		}
	}

	users, err := s.users.FindByMails(ctx, mails)
	if err != nil {
		return nil, err
	}
	nameByMail := make(map[string]string, len(users))
	for _, u := range users {
		nameByMail[u.UserMail] = u.AuthorName
	}

	out := make([]BlogWithAuthor, 0, len(posts))
	for _, p := range posts {
		name, ok := nameByMail[p.UserMail]
		if !ok {
			name = UnknownAuthor
		}
		out = append(out, BlogWithAuthor{BlogPost: p, AuthorName: name})
	}
	return out, nil
}

// GetByID loads a post by its ObjectID hex.
func (s *BlogService) GetByID(ctx context.Context, hexID string) (*models.BlogPost, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	post, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return post, nil
}

// ListByUser returns the posts written under the given mail address, without
// the author-name join.
func (s *BlogService) ListByUser(ctx context.Context, userMail string) ([]models.BlogPost, error) {
	return s.blogs.ListByUserMail(ctx, userMail)
}
