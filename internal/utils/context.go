// Package utils provides small helpers shared by the server and the client:
// type-safe context keys, log-friendly credential hashes, plain-text HTTP
// responses, the resty client wrapper and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pass-web/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// StorageRequestCtxKey is the key under which the parsed RemoteStorage
// request travels from the request-parsing middleware to the handler.
var StorageRequestCtxKey = contextKey("storageRequest")

// WithStorageRequest returns a copy of ctx carrying req.
func WithStorageRequest(ctx context.Context, req models.StorageRequest) context.Context {
	return context.WithValue(ctx, StorageRequestCtxKey, req)
}

// GetStorageRequestFromContext retrieves the parsed storage request.
//
// Returns the request and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetStorageRequestFromContext(ctx context.Context) (models.StorageRequest, bool) {
	req, ok := ctx.Value(StorageRequestCtxKey).(models.StorageRequest)
	return req, ok
}
