package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntryID     = errors.New("entry id is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrDuplicateEntryID = errors.New("duplicate entry id")
	ErrUnknownMethod    = errors.New("unknown storage method")
	ErrMissingName      = errors.New("name is required")
)
