package main

import (
	"context"

	"github.com/MKhiriev/go-pass-web/internal/adapter"
	"github.com/MKhiriev/go-pass-web/internal/client"
	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/crypto"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/internal/store"
	"github.com/MKhiriev/go-pass-web/internal/tui"
	"github.com/MKhiriev/go-pass-web/internal/workers"
	"github.com/MKhiriev/go-pass-web/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-pass-web-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-pass-web-client", cfg.LogFile)
	if err = logger.SetGlobalLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log.Info().Stringer("build", build).Msg("starting client")

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	remote, err := adapter.NewHTTPRemoteStorage(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote storage adapter")
	}

	codec, err := crypto.NewBlobCodec(crypto.DefaultKDFParams())
	if err != nil {
		log.Fatal().Err(err).Msg("create blob codec")
	}

	services := service.NewClientServices(localStorage, remote, codec, cfg, log)
	ui := tui.New(services.SessionService, build, log)
	jobs := workers.NewWorkers(services.SessionService, cfg.Workers, log)

	app := client.NewApp(services, ui, jobs, log)
	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
