package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. The messages are
// part of the API surface, so they match the responses clients already see.
var (
	ErrInvalidID = errors.New("invalid id")

	ErrBlogNotFound     = errors.New("Blog not found")
	ErrCommentNotFound  = errors.New("Comment not found")
	ErrMaterialNotFound = errors.New("Material not found")
	ErrUserNotFound     = errors.New("User not found")

	ErrUserExists      = errors.New("User already exists")
	ErrAuthorNameTaken = errors.New("Author name already in use")
)
