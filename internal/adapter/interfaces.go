// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the passweb
// RemoteStorage endpoint.
//
// The primary abstraction is [RemoteStorage], which decouples the session
// service from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPRemoteStorage]) that talks to the endpoint through POST form
// dispatch, the same way a browser client does.
//
// Every transport failure and every non-2xx response is reported as
// [ErrNetworkFailure] so callers can use [errors.Is] without caring about
// status codes: the endpoint answers every failure with an opaque 500.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_storage_mock.go -package=mock

// RemoteStorage reads and writes the single blob of a user on the server.
type RemoteStorage interface {
	// Read returns the blob stored under name.
	Read(ctx context.Context, name string) (string, error)

	// Write stores content under name. A non-empty previousName makes the
	// server back up and remove the blob stored under it (rename path).
	Write(ctx context.Context, name, previousName, content string) error

	// Delete removes the blob stored under name.
	Delete(ctx context.Context, name string) error
}
