package blocks

import "errors"

var (
	ErrUnknownType   = errors.New("blocks: unknown block type")
	ErrTypeMismatch  = errors.New("blocks: value does not match block type")
	ErrValueInvalid  = errors.New("blocks: compound value failed validation")
	ErrValueNotJSON  = errors.New("blocks: compound value is not valid JSON")
	ErrValueRequired = errors.New("blocks: value is required")
)
