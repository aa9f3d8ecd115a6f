package service

import "errors"

// Server-side errors of the StorageService.
var (
	ErrMissingName     = errors.New("name is required")
	ErrListingDisabled = errors.New("listing is disabled")
	ErrInvalidRequest  = errors.New("invalid storage request")
)

// Client-side errors of the SessionService. Failures of local or remote
// storage are never returned; they end up in the session's error list.
var (
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrEmptyUsername       = errors.New("user name is required")
	ErrInvalidEntry        = errors.New("invalid entry")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrEmptyMasterPassword = errors.New("new master password is empty")
)
