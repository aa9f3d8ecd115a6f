package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a configuration file. The same keys
// are used for JSON and YAML.
type fileConfig struct {
	App struct {
		LogLevel string `json:"log_level" yaml:"log_level"`
		Version  string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		BasePath       string   `json:"base_path" yaml:"base_path"`
	} `json:"server" yaml:"server"`

	Storage struct {
		Backend string `json:"backend" yaml:"backend"`
		Files   struct {
			Root string `json:"root" yaml:"root"`
		} `json:"files" yaml:"files"`
		Bolt struct {
			Path string `json:"path" yaml:"path"`
		} `json:"bolt" yaml:"bolt"`
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Features struct {
		AllowList                   *bool `json:"allow_list" yaml:"allow_list"`
		BackupFile                  *bool `json:"backup_file" yaml:"backup_file"`
		BlockNew                    *bool `json:"block_new" yaml:"block_new"`
		SimpleCORS                  *bool `json:"simple_cors" yaml:"simple_cors"`
		ThrottleRequests            *bool `json:"throttle_requests" yaml:"throttle_requests"`
		SerializeWrites             *bool `json:"serialize_writes" yaml:"serialize_writes"`
		TestAllowBypassBlockNew     *bool `json:"test_allow_bypass_block_new" yaml:"test_allow_bypass_block_new"`
		TestAllowListIncludeBackups *bool `json:"test_allow_list_include_backups" yaml:"test_allow_list_include_backups"`
		TestCreateUniqueDirectory   *bool `json:"test_create_unique_directory" yaml:"test_create_unique_directory"`
	} `json:"features" yaml:"features"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Client struct {
		CacheDSN   string `json:"cache_dsn" yaml:"cache_dsn"`
		UniqueText string `json:"unique_text" yaml:"unique_text"`
		LogFile    string `json:"log_file" yaml:"log_file"`
	} `json:"client" yaml:"client"`

	Workers struct {
		SyncInterval      Duration `json:"sync_interval" yaml:"sync_interval"`
		InactivityTimeout Duration `json:"inactivity_timeout" yaml:"inactivity_timeout"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON or YAML configuration file. The format is chosen by
// extension: ".yaml" and ".yml" are YAML, everything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			LogLevel: fc.App.LogLevel,
			Version:  fc.App.Version,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			BasePath:       fc.Server.BasePath,
		},
		Storage: Storage{
			Backend: fc.Storage.Backend,
			Files:   Files{Root: fc.Storage.Files.Root},
			Bolt:    Bolt{Path: fc.Storage.Bolt.Path},
			DB:      DB{DSN: fc.Storage.DB.DSN},
		},
		Features: Features{
			AllowList:                   fc.Features.AllowList,
			BackupFile:                  fc.Features.BackupFile,
			BlockNew:                    fc.Features.BlockNew,
			SimpleCORS:                  fc.Features.SimpleCORS,
			ThrottleRequest:             fc.Features.ThrottleRequests,
			SerializeWrites:             fc.Features.SerializeWrites,
			TestAllowBypassBlockNew:     fc.Features.TestAllowBypassBlockNew,
			TestAllowListIncludeBackups: fc.Features.TestAllowListIncludeBackups,
			TestCreateUniqueDirectory:   fc.Features.TestCreateUniqueDirectory,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Client: Client{
			CacheDSN:   fc.Client.CacheDSN,
			UniqueText: fc.Client.UniqueText,
			LogFile:    fc.Client.LogFile,
		},
		Workers: Workers{
			SyncInterval:      time.Duration(fc.Workers.SyncInterval),
			InactivityTimeout: time.Duration(fc.Workers.InactivityTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that accepts strings like "1h"
// or "30s" as well as plain nanosecond numbers in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
