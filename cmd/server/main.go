package main

import (
	"context"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/handler"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/server"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/internal/store"
	"github.com/MKhiriev/go-pass-web/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-pass-web-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetGlobalLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Info().Stringer("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit)).Msg("starting server")
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
