package pages

import "errors"

var (
	ErrPageNotFound     = errors.New("pages: page not found")
	ErrPageExists       = errors.New("pages: page already exists")
	ErrPageIDRequired   = errors.New("pages: page id is required")
	ErrTitleRequired    = errors.New("pages: title is required")
	ErrSlugRequired     = errors.New("pages: slug is required")
	ErrSlugExists       = errors.New("pages: slug already in use")
	ErrStatusInvalid    = errors.New("pages: invalid status")
	ErrDuplicateBlockID = errors.New("pages: duplicate block id")
)
