package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-web/internal/validators"
	"github.com/MKhiriev/go-pass-web/models"
)

// StorageValidationService checks requests before they reach the wrapped
// StorageService.
type StorageValidationService struct {
	inner     StorageService
	validator validators.Validator
}

func NewStorageValidationService() StorageServiceWrapper {
	return &StorageValidationService{
		validator: validators.NewStorageRequestValidator(),
	}
}

func (v *StorageValidationService) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	return v.inner.Read(ctx, name)
}

func (v *StorageValidationService) Write(ctx context.Context, req models.StorageRequest, content io.Reader) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}

	return v.inner.Write(ctx, req, content)
}

func (v *StorageValidationService) Delete(ctx context.Context, name string) error {
	req := models.StorageRequest{Method: models.StorageMethodDelete, Name: name, HasName: name != ""}
	if err := v.validate(ctx, req); err != nil {
		return err
	}

	return v.inner.Delete(ctx, name)
}

func (v *StorageValidationService) List(ctx context.Context, req models.StorageRequest) ([]string, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldMethod); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.List(ctx, req)
}

func (v *StorageValidationService) Wrap(inner StorageService) StorageService {
	v.inner = inner
	return v
}

func (v *StorageValidationService) validate(ctx context.Context, req models.StorageRequest) error {
	err := v.validator.Validate(ctx, req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrMissingName):
		return fmt.Errorf("%w: %w", ErrMissingName, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
}
