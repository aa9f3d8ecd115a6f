package validators

import (
	"context"

	"github.com/MKhiriev/go-pass-web/models"
)

const (
	FieldMethod = "method"
	FieldName   = "name"
)

// StorageRequestValidator checks RemoteStorage requests after POST dispatch.
type StorageRequestValidator struct {
}

func NewStorageRequestValidator() Validator {
	return &StorageRequestValidator{}
}

// Validate accepts models.StorageRequest. A get without name is a listing,
// so name is required only for put and delete.
func (v *StorageRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StorageRequest:
		return v.validateStorageRequest(value, fields...)
	case *models.StorageRequest:
		return v.validateStorageRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StorageRequestValidator) validateStorageRequest(req models.StorageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if _, ok := models.ParseStorageMethod(string(req.Method)); !ok {
				return ErrUnknownMethod
			}
		case FieldName:
			if req.Method != models.StorageMethodGet && (!req.HasName || req.Name == "") {
				return ErrMissingName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
