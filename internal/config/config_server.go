package config

import (
	"fmt"
	"os"
	"time"
)

// ServerFeatures is the resolved form of [Features].
type ServerFeatures struct {
	AllowList       bool
	BackupFile      bool
	BlockNew        bool
	SimpleCORS      bool
	ThrottleRequest bool
	SerializeWrites bool

	TestAllowBypassBlockNew     bool
	TestAllowListIncludeBackups bool
	TestCreateUniqueDirectory   bool
}

// ServerStorage holds the settings of the selected blob backend.
type ServerStorage struct {
	Backend   string
	FilesRoot string
	BoltPath  string
	DSN       string
}

// ServerHTTP holds listener settings.
type ServerHTTP struct {
	Address        string
	RequestTimeout time.Duration
	BasePath       string
}

// ServerConfig is the passweb-server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	LogLevel string
	Version  string
	HTTP     ServerHTTP
	Storage  ServerStorage
	Features ServerFeatures
}

// GetServerConfig builds and validates the server configuration from the
// process environment and command-line arguments.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	f := cfg.Features
	return &ServerConfig{
		LogLevel: cfg.App.LogLevel,
		Version:  cfg.App.Version,
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			BasePath:       cfg.Server.BasePath,
		},
		Storage: ServerStorage{
			Backend:   cfg.Storage.Backend,
			FilesRoot: cfg.Storage.Files.Root,
			BoltPath:  cfg.Storage.Bolt.Path,
			DSN:       cfg.Storage.DB.DSN,
		},
		Features: ServerFeatures{
			AllowList:                   isSet(f.AllowList),
			BackupFile:                  isSet(f.BackupFile),
			BlockNew:                    isSet(f.BlockNew),
			SimpleCORS:                  isSet(f.SimpleCORS),
			ThrottleRequest:             isSet(f.ThrottleRequest),
			SerializeWrites:             isSet(f.SerializeWrites),
			TestAllowBypassBlockNew:     isSet(f.TestAllowBypassBlockNew),
			TestAllowListIncludeBackups: isSet(f.TestAllowListIncludeBackups),
			TestCreateUniqueDirectory:   isSet(f.TestCreateUniqueDirectory),
		},
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}
