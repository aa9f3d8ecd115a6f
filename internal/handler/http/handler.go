package http

import (
	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/internal/utils"
)

type Handler struct {
	services   *service.Services
	features   config.ServerFeatures
	basePath   string
	throttle   *Throttle
	newTraceID func() string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:   services,
		features:   cfg.Features,
		basePath:   cfg.HTTP.BasePath,
		newTraceID: utils.NewTraceID,
		logger:     logger,
	}
	if cfg.Features.ThrottleRequest {
		h.throttle = NewThrottle()
	}

	logger.Info().
		Str("base_path", h.basePath).
		Bool("throttle", cfg.Features.ThrottleRequest).
		Bool("simple_cors", cfg.Features.SimpleCORS).
		Msg("http handler created")
	return h
}
