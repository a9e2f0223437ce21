package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ansh1vohra/edublog-server/models"
)

// CommentService encapsulates business logic for comments and their
// embedded replies.
type CommentService struct {
	comments CommentStore
}

func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

// Create inserts a comment under the given post with an empty replies array.
// A malformed post id is rejected before anything is written.
func (s *CommentService) Create(ctx context.Context, postIDHex, text, author string) (primitive.ObjectID, error) {
	postID, err := primitive.ObjectIDFromHex(postIDHex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	comment := &models.Comment{
		PostID:    postID,
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
		Replies:   []models.Reply{},
	}
	return s.comments.Insert(ctx, comment)
}

// AddReply appends a reply to the end of the comment's replies array.
// Replies keep insertion order and are never reordered.
func (s *CommentService) AddReply(ctx context.Context, commentIDHex, text, author string) error {
	commentID, err := primitive.ObjectIDFromHex(commentIDHex)
	if err != nil {
		return ErrInvalidID
	}

	reply := models.Reply{
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
	modified, err := s.comments.PushReply(ctx, commentID, reply)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// ListByPost returns all comments for a post, in storage order.
func (s *CommentService) ListByPost(ctx context.Context, postIDHex string) ([]models.Comment, error) {
	postID, err := primitive.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.comments.ListByPostID(ctx, postID)
}
