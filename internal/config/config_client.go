package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/crypto"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the RemoteStorage endpoint URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// CacheDSN is the SQLite file of the local blob cache.
	CacheDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the remote refresh worker runs.
	SyncInterval time.Duration
	// InactivityTimeout is the idle time after which the session logs out.
	InactivityTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	LogLevel string
	LogFile  string
	Version  string

	// UniqueText is the installation-unique text mixed into credential
	// hashes and encryption keys.
	UniqueText string

	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config, maps only the fields relevant to the client
// runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	uniqueText := cfg.Client.UniqueText
	if uniqueText == "" {
		uniqueText = crypto.UniqueTextFromURL(cfg.Adapter.HTTPAddress)
	}

	return &ClientConfig{
		LogLevel:   cfg.App.LogLevel,
		LogFile:    cfg.Client.LogFile,
		Version:    cfg.App.Version,
		UniqueText: uniqueText,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CacheDSN: cfg.Client.CacheDSN,
		},
		Workers: ClientWorkers{
			SyncInterval:      cfg.Workers.SyncInterval,
			InactivityTimeout: cfg.Workers.InactivityTimeout,
		},
	}
}
