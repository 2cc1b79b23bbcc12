package media

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sproux/cms/internal/identity"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/media"
	"github.com/sproux/cms/pkg/interfaces"
)

type service struct {
	mu    sync.RWMutex
	items map[string]*media.Attachment
	order []string

	logger interfaces.Logger
	clock  func() time.Time
}

// Option configures the media service.
type Option func(*service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService builds an empty media library.
func NewService(opts ...Option) media.Service {
	s := &service{
		items:  make(map[string]*media.Attachment),
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Add(_ context.Context, req media.AddAttachmentRequest) (*media.Attachment, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return nil, media.ErrFileNameRequired
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, media.ErrURLRequired
	}
	fileType := req.FileType
	if fileType == "" {
		fileType = classify(req.MimeType)
	}
	if !fileType.Valid() {
		return nil, media.ErrTypeInvalid
	}

	id := req.ID
	if id == "" {
		id = identity.AttachmentID(req.FileName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return nil, media.ErrAttachmentExists
	}

	title := req.Title
	if title == "" {
		title = req.FileName
	}

	item := &media.Attachment{
		ID:          id,
		FileName:    req.FileName,
		FileType:    fileType,
		MimeType:    req.MimeType,
		FileSize:    req.FileSize,
		URL:         req.URL,
		Title:       title,
		AltText:     req.AltText,
		Caption:     req.Caption,
		Description: req.Description,
		UploadedBy:  req.UploadedBy,
		CreatedAt:   s.clock(),
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)

	s.logger.Debug("attachment added", "attachment_id", item.ID, "type", string(item.FileType))
	out := *item
	return &out, nil
}

func (s *service) Get(_ context.Context, id string) (*media.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, media.ErrAttachmentNotFound
	}
	out := *item
	return &out, nil
}

func (s *service) Update(_ context.Context, req media.UpdateAttachmentRequest) (*media.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[req.ID]
	if !ok {
		return nil, media.ErrAttachmentNotFound
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.AltText != nil {
		item.AltText = *req.AltText
	}
	if req.Caption != nil {
		item.Caption = *req.Caption
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	out := *item
	return &out, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return media.ErrAttachmentNotFound
	}

	delete(s.items, id)
	out := s.order[:0]
	for _, candidate := range s.order {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	s.order = out
	s.logger.Info("attachment deleted", "attachment_id", id)
	return nil
}

func (s *service) List(_ context.Context) ([]*media.Attachment, error) {
	return s.list(func(*media.Attachment) bool { return true }), nil
}

func (s *service) ListImages(_ context.Context) ([]*media.Attachment, error) {
	return s.list(func(item *media.Attachment) bool {
		return item.FileType == media.TypeImage
	}), nil
}

func (s *service) list(keep func(*media.Attachment) bool) []*media.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*media.Attachment, 0, len(s.order))
	for _, id := range s.order {
		item := s.items[id]
		if !keep(item) {
			continue
		}
		clone := *item
		out = append(out, &clone)
	}
	return out
}

func classify(mimeType string) media.Type {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return media.TypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return media.TypeVideo
	case strings.HasPrefix(mimeType, "application/"), strings.HasPrefix(mimeType, "text/"):
		return media.TypeDocument
	default:
		return media.TypeOther
	}
}
