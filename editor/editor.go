package editor

import (
	"context"

	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
)

// Manager opens editing sessions over page documents.
type Manager interface {
	Open(ctx context.Context, pageID string) (Session, error)
}

// Session is a draft over a single page document. A session is owned by one
// editing workflow at a time and is not safe for concurrent use; all
// persistence happens through Publish.
type Session interface {
	PageID() string
	Closed() bool
	HasChanges() bool
	Status() domain.Status
	Blocks() []blocks.Block
	// Groups partitions the draft blocks by their metadata group, keeping
	// first-seen group order. Blocks without a group fall into DefaultGroup.
	Groups() []Group

	Select(blockID string) error
	ClearSelection()
	Selected() (blocks.Block, bool)

	// UpdateValue replaces a block's raw value wholesale and shallow-merges
	// the optional metadata patch.
	UpdateValue(blockID, value string, patch *blocks.MetadataPatch) error
	// AddBlock appends a default block of the given type and selects it.
	AddBlock(t blocks.Type) (blocks.Block, error)
	// PickImage writes an attachment's URL and alt text into an image block.
	PickImage(blockID string, pick ImagePick) error

	// Deleting a block is a two-step transition: RequestDelete arms the
	// pending delete, ConfirmDelete applies it, CancelDelete abandons it.
	RequestDelete(blockID string) error
	PendingDelete() (string, bool)
	ConfirmDelete() error
	CancelDelete()

	// Move swaps a block with its neighbour in the flat sequence. Moving the
	// first block up or the last block down is a no-op, not an error.
	Move(blockID string, dir Direction) error

	SetStatus(status domain.Status) error

	// Publish writes the draft blocks and status back to the page store and
	// closes the session. When nothing changed it is a no-op: no write
	// happens and the session stays open.
	Publish(ctx context.Context) error
	// Discard closes the session leaving the page untouched.
	Discard()
}

// DefaultGroup is the display group for blocks without group metadata.
const DefaultGroup = "General"

// Group is a display partition of the draft's flat block sequence.
type Group struct {
	Name   string
	Blocks []blocks.Block
}

// Direction selects which neighbour a block swaps with.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// ImagePick carries the fields an image picker writes into a block.
type ImagePick struct {
	URL string
	Alt string
}
