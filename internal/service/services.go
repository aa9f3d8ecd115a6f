package service

import (
	"github.com/MKhiriev/go-pass-web/internal/adapter"
	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/crypto"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/store"
)

// Services aggregates the server-side services.
type Services struct {
	StorageService StorageService
}

// NewServices builds the server services. The storage service is wrapped
// with request validation.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	storageService := NewStorageService(storages.Blobs, cfg.Features, logger)

	return &Services{
		StorageService: NewStorageValidationService().Wrap(storageService),
	}
}

// ClientServices aggregates the client-side services.
type ClientServices struct {
	SessionService SessionService
}

// NewClientServices builds the client session service.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteStorage,
	codec crypto.BlobCodec,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		SessionService: NewSessionService(storages.Cache, storages.Settings, remote, codec, cfg.UniqueText, logger),
	}
}
