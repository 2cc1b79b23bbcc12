package pages

import (
	"time"

	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
)

// Page is an ordered collection of content blocks plus publication status for
// one route. Block order is display order; editor groups derive from block
// metadata, not a separate ordering field.
type Page struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Status    domain.Status  `json:"status"`
	UpdatedAt time.Time      `json:"updated_at"`
	Blocks    []blocks.Block `json:"blocks"`
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	cloned := *p
	cloned.Blocks = blocks.CloneBlocks(p.Blocks)
	return &cloned
}

// BlockByID returns the block with the given id, if present.
func (p *Page) BlockByID(id string) (blocks.Block, bool) {
	for _, block := range p.Blocks {
		if block.ID == id {
			return block, true
		}
	}
	return blocks.Block{}, false
}
