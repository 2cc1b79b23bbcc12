package editor

import (
	"context"

	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/editor"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pages"
	"github.com/sproux/cms/pkg/interfaces"
)

type manager struct {
	pages    pages.Service
	registry *blocks.Registry
	logger   interfaces.Logger
}

// ManagerOption configures the session manager.
type ManagerOption func(*manager)

// WithLogger attaches a logger to opened sessions.
func WithLogger(logger interfaces.Logger) ManagerOption {
	return func(m *manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager builds an editor manager over the page store.
func NewManager(pageService pages.Service, registry *blocks.Registry, opts ...ManagerOption) editor.Manager {
	m := &manager{
		pages:    pageService,
		registry: registry,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *manager) Open(ctx context.Context, pageID string) (editor.Session, error) {
	page, err := m.pages.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("editor session opened", "page_id", pageID, "blocks", len(page.Blocks))
	return &session{
		manager: m,
		pageID:  page.ID,
		status:  page.Status,
		draft:   blocks.CloneBlocks(page.Blocks),
	}, nil
}

// session holds the draft state for a single page. It is mutated by a single
// editing workflow and never shared across goroutines.
type session struct {
	manager *manager
	pageID  string
	draft   []blocks.Block
	status  domain.Status

	selectedID    string
	pendingDelete string
	dirty         bool
	closed        bool
}

func (s *session) PageID() string        { return s.pageID }
func (s *session) Closed() bool          { return s.closed }
func (s *session) HasChanges() bool      { return s.dirty }
func (s *session) Status() domain.Status { return s.status }

func (s *session) Blocks() []blocks.Block {
	return blocks.CloneBlocks(s.draft)
}

func (s *session) Groups() []editor.Group {
	var groups []editor.Group
	index := make(map[string]int)
	for _, block := range s.draft {
		name := block.Metadata.Group
		if name == "" {
			name = editor.DefaultGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, editor.Group{Name: name})
		}
		groups[i].Blocks = append(groups[i].Blocks, block.Clone())
	}
	return groups
}

func (s *session) Select(blockID string) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	if _, ok := s.find(blockID); !ok {
		return editor.ErrBlockNotFound
	}
	// Selection is navigation, not an edit. It never dirties the draft.
	s.selectedID = blockID
	return nil
}

func (s *session) ClearSelection() {
	s.selectedID = ""
}

func (s *session) Selected() (blocks.Block, bool) {
	if s.selectedID == "" {
		return blocks.Block{}, false
	}
	i, ok := s.find(s.selectedID)
	if !ok {
		return blocks.Block{}, false
	}
	return s.draft[i].Clone(), true
}

func (s *session) UpdateValue(blockID, value string, patch *blocks.MetadataPatch) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	i, ok := s.find(blockID)
	if !ok {
		return editor.ErrBlockNotFound
	}

	s.draft[i].Value = value
	if patch != nil {
		s.draft[i].Metadata = patch.Apply(s.draft[i].Metadata)
	}
	s.dirty = true
	return nil
}

func (s *session) AddBlock(t blocks.Type) (blocks.Block, error) {
	if s.closed {
		return blocks.Block{}, editor.ErrSessionClosed
	}
	block, err := s.manager.registry.CreateDefault(t)
	if err != nil {
		return blocks.Block{}, err
	}
	// The generated id must be unique within the draft; regenerate until it
	// clears every existing block.
	for {
		if _, taken := s.find(block.ID); !taken {
			break
		}
		block.ID = blocks.NewBlockID(t)
	}

	s.draft = append(s.draft, block)
	s.selectedID = block.ID
	s.dirty = true
	s.manager.logger.Debug("block added", "page_id", s.pageID, "block_id", block.ID, "type", string(t))
	return block.Clone(), nil
}

func (s *session) PickImage(blockID string, pick editor.ImagePick) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	i, ok := s.find(blockID)
	if !ok {
		return editor.ErrBlockNotFound
	}
	if s.draft[i].Type != blocks.TypeImage {
		return editor.ErrBlockNotImage
	}

	s.draft[i].Value = pick.URL
	s.draft[i].Metadata.Alt = pick.Alt
	s.dirty = true
	return nil
}

func (s *session) RequestDelete(blockID string) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	if _, ok := s.find(blockID); !ok {
		return editor.ErrBlockNotFound
	}
	s.pendingDelete = blockID
	return nil
}

func (s *session) PendingDelete() (string, bool) {
	return s.pendingDelete, s.pendingDelete != ""
}

func (s *session) ConfirmDelete() error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	if s.pendingDelete == "" {
		return editor.ErrNoPendingDelete
	}

	i, ok := s.find(s.pendingDelete)
	if !ok {
		s.pendingDelete = ""
		return editor.ErrBlockNotFound
	}

	if s.selectedID == s.pendingDelete {
		s.selectedID = ""
	}
	s.draft = append(s.draft[:i], s.draft[i+1:]...)
	s.pendingDelete = ""
	s.dirty = true
	return nil
}

func (s *session) CancelDelete() {
	s.pendingDelete = ""
}

func (s *session) Move(blockID string, dir editor.Direction) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	i, ok := s.find(blockID)
	if !ok {
		return editor.ErrBlockNotFound
	}

	var j int
	switch dir {
	case editor.MoveUp:
		j = i - 1
	case editor.MoveDown:
		j = i + 1
	default:
		return editor.ErrDirectionInvalid
	}
	// The swap happens on the flat sequence, so a move can carry a block
	// across display groups when groups are interleaved.
	if j < 0 || j >= len(s.draft) {
		return nil
	}

	s.draft[i], s.draft[j] = s.draft[j], s.draft[i]
	s.dirty = true
	return nil
}

func (s *session) SetStatus(status domain.Status) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	if !status.Valid() {
		return editor.ErrStatusInvalid
	}
	if status == s.status {
		return nil
	}
	s.status = status
	s.dirty = true
	return nil
}

func (s *session) Publish(ctx context.Context) error {
	if s.closed {
		return editor.ErrSessionClosed
	}
	if !s.dirty {
		// Nothing to save. No write reaches the page store and the session
		// stays open, mirroring a disabled publish control.
		return nil
	}

	_, err := s.manager.pages.ReplaceBlocks(ctx, pages.ReplaceBlocksRequest{
		PageID: s.pageID,
		Blocks: s.draft,
		Status: s.status,
	})
	if err != nil {
		return err
	}

	s.manager.logger.Info("editor session published", "page_id", s.pageID, "blocks", len(s.draft))
	s.close()
	return nil
}

func (s *session) Discard() {
	if s.closed {
		return
	}
	s.manager.logger.Debug("editor session discarded", "page_id", s.pageID)
	s.close()
}

func (s *session) close() {
	s.closed = true
	s.draft = nil
	s.selectedID = ""
	s.pendingDelete = ""
	s.dirty = false
}

func (s *session) find(blockID string) (int, bool) {
	for i := range s.draft {
		if s.draft[i].ID == blockID {
			return i, true
		}
	}
	return 0, false
}
