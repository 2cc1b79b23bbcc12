package media

import (
	"context"
	"errors"
)

var (
	ErrAttachmentNotFound = errors.New("media: attachment not found")
	ErrAttachmentExists   = errors.New("media: attachment already exists")
	ErrFileNameRequired   = errors.New("media: file name is required")
	ErrURLRequired        = errors.New("media: url is required")
	ErrTypeInvalid        = errors.New("media: invalid attachment type")
)

// Service manages the media library metadata.
type Service interface {
	Add(ctx context.Context, req AddAttachmentRequest) (*Attachment, error)
	Get(ctx context.Context, id string) (*Attachment, error)
	Update(ctx context.Context, req UpdateAttachmentRequest) (*Attachment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Attachment, error)
	// ListImages returns only image attachments, the subset the page editor's
	// image picker consumes.
	ListImages(ctx context.Context) ([]*Attachment, error)
}

// AddAttachmentRequest registers an uploaded file's metadata. A missing ID is
// derived from the file name.
type AddAttachmentRequest struct {
	ID          string
	FileName    string
	FileType    Type
	MimeType    string
	FileSize    int64
	URL         string
	Title       string
	AltText     string
	Caption     string
	Description string
	UploadedBy  string
}

// UpdateAttachmentRequest edits an attachment's descriptive fields. Nil
// pointers skip the field.
type UpdateAttachmentRequest struct {
	ID          string
	Title       *string
	AltText     *string
	Caption     *string
	Description *string
}
