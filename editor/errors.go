package editor

import "errors"

var (
	ErrSessionClosed    = errors.New("editor: session is closed")
	ErrBlockNotFound    = errors.New("editor: block not found")
	ErrBlockNotImage    = errors.New("editor: block is not an image")
	ErrNoPendingDelete  = errors.New("editor: no pending delete")
	ErrDirectionInvalid = errors.New("editor: invalid move direction")
	ErrStatusInvalid    = errors.New("editor: invalid status")
)
