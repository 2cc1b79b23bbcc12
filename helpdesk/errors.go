package helpdesk

import "errors"

var (
	ErrCategoryNotFound = errors.New("helpdesk: category not found")
	ErrCategoryExists   = errors.New("helpdesk: category already exists")
	ErrCategoryInUse    = errors.New("helpdesk: category still has topics")
	ErrTopicNotFound    = errors.New("helpdesk: topic not found")
	ErrTopicExists      = errors.New("helpdesk: topic already exists")
	ErrTopicInUse       = errors.New("helpdesk: topic still has articles")
	ErrArticleNotFound  = errors.New("helpdesk: article not found")
	ErrArticleExists    = errors.New("helpdesk: article already exists")
	ErrStatusInvalid    = errors.New("helpdesk: status invalid")
	ErrTopicMismatch    = errors.New("helpdesk: topic does not belong to category")
)
