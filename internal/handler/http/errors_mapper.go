package http

import (
	"errors"

	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/internal/store"
)

// Every failure is answered with an empty 500, so errors are mapped to a short
// reason that goes into the access log instead of a status code.
var errorReasonMap = map[error]string{
	store.ErrInvalidName:       "invalid_name",
	store.ErrBlocked:           "blocked",
	store.ErrNotFound:          "not_found",
	store.ErrExists:            "exists",
	store.ErrNoFreeBackupName:  "backup_name",
	store.ErrIO:                "io",
	service.ErrMissingName:     "missing_name",
	service.ErrListingDisabled: "listing_disabled",
	service.ErrInvalidRequest:  "invalid_request",
	ErrUnsupportedPath:         "unsupported_path",
	ErrMissingMethod:           "missing_method",
	ErrUnsupportedMethod:       "unsupported_method",
	ErrUnsupportedOrigin:       "unsupported_origin",
	ErrMalformedForm:           "malformed_form",
}

func reasonFromError(err error) string {
	for target, reason := range errorReasonMap {
		if errors.Is(err, target) {
			return reason
		}
	}
	return "internal"
}
