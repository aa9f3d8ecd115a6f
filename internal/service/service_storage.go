package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/store"
	"github.com/MKhiriev/go-pass-web/internal/utils"
	"github.com/MKhiriev/go-pass-web/models"
)

type storageService struct {
	blobs    store.BlobStorage
	features config.ServerFeatures

	logger *logger.Logger
}

// NewStorageService returns a StorageService over blobs. The feature
// switches decide whether new blobs may be created, whether listing is
// allowed and whether the test-only request switches are honoured.
func NewStorageService(blobs store.BlobStorage, features config.ServerFeatures, logger *logger.Logger) StorageService {
	return &storageService{
		blobs:    blobs,
		features: features,
		logger:   logger,
	}
}

func (s *storageService) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.blobs.Read(ctx, name)
}

func (s *storageService) Write(ctx context.Context, req models.StorageRequest, content io.Reader) error {
	if req.Name == "" {
		return ErrMissingName
	}

	allowCreate := !s.features.BlockNew || (s.features.TestAllowBypassBlockNew && req.Bypass)

	err := s.blobs.Write(ctx, store.WriteRequest{
		Name:         req.Name,
		PreviousName: req.PreviousName,
		Content:      content,
		AllowCreate:  allowCreate,
	})
	if err != nil {
		return err
	}

	log := logger.FromContextOr(ctx, s.logger)
	log.Debug().
		Str("func", "*storageService.Write").
		Str("name", utils.ShortHash(req.Name)).
		Bool("rename", req.PreviousName != "" && req.PreviousName != req.Name).
		Msg("blob written")

	return nil
}

func (s *storageService) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrMissingName
	}

	return s.blobs.Delete(ctx, name)
}

func (s *storageService) List(ctx context.Context, req models.StorageRequest) ([]string, error) {
	if !s.features.AllowList {
		return nil, ErrListingDisabled
	}

	includeBackups := s.features.TestAllowListIncludeBackups && req.IncludeBackups
	return s.blobs.List(ctx, includeBackups)
}
