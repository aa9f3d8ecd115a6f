// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level failures detected before the service layer is reached. The
// endpoint answers all of them with an empty 500, the sentinels only end up
// in the access log.
var (
	// ErrUnsupportedPath is returned when the request path does not end with
	// the configured base path.
	ErrUnsupportedPath = errors.New("unsupported request path")

	// ErrMissingMethod is returned for a POST without the "method" form value.
	ErrMissingMethod = errors.New("missing method form value")

	// ErrUnsupportedMethod is returned for an HTTP or form method other than
	// GET, PUT or DELETE.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrUnsupportedOrigin is returned by the simple CORS check when the
	// Origin header does not name the serving host.
	ErrUnsupportedOrigin = errors.New("unsupported value for Origin request header")

	// ErrMalformedForm is returned when the request form cannot be parsed.
	ErrMalformedForm = errors.New("malformed request form")
)
