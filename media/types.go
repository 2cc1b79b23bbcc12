package media

import "time"

// Type classifies an attachment by broad family rather than MIME type.
type Type string

const (
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeDocument Type = "document"
	TypeOther    Type = "other"
)

// Valid reports whether the type is one of the known families.
func (t Type) Valid() bool {
	switch t {
	case TypeImage, TypeVideo, TypeDocument, TypeOther:
		return true
	}
	return false
}

// Attachment is a library entry. The URL points at externally hosted bytes,
// the library only tracks metadata.
type Attachment struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	FileType    Type      `json:"fileType"`
	MimeType    string    `json:"mimeType"`
	FileSize    int64     `json:"fileSize"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	AltText     string    `json:"altText,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	Description string    `json:"description,omitempty"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
