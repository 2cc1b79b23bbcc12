package domain

import "strings"

// Status represents lifecycle states for site content.
type Status string

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft Status = "draft"
	// StatusPublished identifies content available to visitors.
	StatusPublished Status = "published"
	// StatusPrivate marks content retained in the admin panel but hidden from visitors.
	StatusPrivate Status = "private"
)

// NormalizeStatus coerces arbitrary status strings into a known representation,
// defaulting to draft for empty input.
func NormalizeStatus(input string) Status {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return StatusDraft
	}
	return Status(trimmed)
}

// Valid reports whether the status is one of the recognised lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusPrivate:
		return true
	default:
		return false
	}
}

// Visible reports whether content carrying this status renders on the public site.
func (s Status) Visible() bool {
	return s == StatusPublished
}
