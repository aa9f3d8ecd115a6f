package models

import "strings"

// StorageMethod is the operation requested from the RemoteStorage endpoint.
type StorageMethod string

const (
	StorageMethodGet    StorageMethod = "get"
	StorageMethodPut    StorageMethod = "put"
	StorageMethodDelete StorageMethod = "delete"
)

// ParseStorageMethod maps an HTTP method or the POST "method" form value to a
// StorageMethod. The comparison is case-insensitive.
func ParseStorageMethod(raw string) (StorageMethod, bool) {
	switch StorageMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case StorageMethodGet:
		return StorageMethodGet, true
	case StorageMethodPut:
		return StorageMethodPut, true
	case StorageMethodDelete:
		return StorageMethodDelete, true
	default:
		return "", false
	}
}

// StorageRequest is a RemoteStorage call after POST dispatch has been
// resolved. HasName and HasPreviousName distinguish an absent parameter
// from an empty one.
type StorageRequest struct {
	Method StorageMethod

	Name            string
	HasName         bool
	PreviousName    string
	HasPreviousName bool

	// Content holds the POST "content" form value. When HasContent is false
	// the request body is the blob content.
	Content    string
	HasContent bool

	// Test-only switches, honoured only when the matching feature is on.
	Bypass         bool
	IncludeBackups bool
}
