package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCommentRejectsMalformedPostID(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	_, err := svc.Create(context.Background(), "garbage", "hi", "alice")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestCreateCommentStartsWithEmptyReplies(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)

	postID := primitive.NewObjectID()
	id, err := svc.Create(context.Background(), postID.Hex(), "hi", "alice")
	assert.NoError(t, err)

	comments, err := svc.ListByPost(context.Background(), postID.Hex())
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, id, comments[0].ID)
	assert.NotNil(t, comments[0].Replies)
	assert.Empty(t, comments[0].Replies)
	assert.False(t, comments[0].CreatedAt.IsZero())
}

func TestAddReplyKeepsAppendOrder(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)

	postID := primitive.NewObjectID()
	commentID, err := svc.Create(context.Background(), postID.Hex(), "root", "alice")
	assert.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		err := svc.AddReply(context.Background(), commentID.Hex(), fmt.Sprintf("reply-%d", i), "bob")
		assert.NoError(t, err)
	}

	comments, err := svc.ListByPost(context.Background(), postID.Hex())
	assert.NoError(t, err)
	replies := comments[0].Replies
	assert.Len(t, replies, n)
	for i, r := range replies {
		assert.Equal(t, fmt.Sprintf("reply-%d", i), r.Text)
		if i > 0 {
			// each reply carries its own timestamp, never earlier than the
			// previous one
			assert.False(t, r.CreatedAt.Before(replies[i-1].CreatedAt))
		}
	}
}

func TestAddReplyToMissingComment(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	err := svc.AddReply(context.Background(), primitive.NewObjectID().Hex(), "hi", "bob")
	assert.ErrorIs(t, err, ErrCommentNotFound)

	err = svc.AddReply(context.Background(), "garbage", "hi", "bob")
	assert.ErrorIs(t, err, ErrInvalidID)
}
