// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the server view satisfies all invariants before it
// is used at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.HTTP.Address == "" || cfg.HTTP.RequestTimeout <= 0 || !strings.HasPrefix(cfg.HTTP.BasePath, "/") {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.FilesRoot == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendBolt:
		if cfg.Storage.BoltPath == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendPostgres:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.CacheDSN == "" || strings.Contains(cfg.Storage.CacheDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.InactivityTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.UniqueText == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
