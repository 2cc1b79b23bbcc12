package posts

import "errors"

var (
	ErrPostNotFound     = errors.New("posts: post not found")
	ErrPostExists       = errors.New("posts: post already exists")
	ErrTitleRequired    = errors.New("posts: title is required")
	ErrStatusInvalid    = errors.New("posts: invalid status")
	ErrCategoryNotFound = errors.New("posts: category not found")
	ErrCategoryExists   = errors.New("posts: category already exists")
	ErrCategoryInUse    = errors.New("posts: category still referenced by posts")
)
