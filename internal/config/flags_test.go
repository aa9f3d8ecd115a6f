package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be in 1..65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be in 1..65535"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// TestParseFlags_AllFlags verifies that every flag lands in its field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9999",
		"--request-timeout", "5s",
		"--base-path", "/Vault",
		"--storage", "bolt",
		"-f", "/srv/blobs",
		"--bolt-path", "/srv/blobs.db",
		"-d", "postgres://x",
		"-c", "cfg.json",
		"--log-level", "debug",
		"--allow-list",
		"--block-new=false",
		"--server", "http://h:1/RemoteStorage",
		"--adapter-timeout", "3s",
		"--cache", "c.db",
		"--unique-text", "U",
		"--log-file", "l.log",
		"--sync-interval", "1m",
		"--inactivity-timeout", "2m",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/Vault", cfg.Server.BasePath)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, "/srv/blobs", cfg.Storage.Files.Root)
	assert.Equal(t, "/srv/blobs.db", cfg.Storage.Bolt.Path)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	require.NotNil(t, cfg.Features.AllowList)
	assert.True(t, *cfg.Features.AllowList)
	require.NotNil(t, cfg.Features.BlockNew)
	assert.False(t, *cfg.Features.BlockNew)
	assert.Nil(t, cfg.Features.BackupFile, "unset flags must stay nil")

	assert.Equal(t, "http://h:1/RemoteStorage", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "c.db", cfg.Client.CacheDSN)
	assert.Equal(t, "U", cfg.Client.UniqueText)
	assert.Equal(t, "l.log", cfg.Client.LogFile)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Minute, cfg.Workers.InactivityTimeout)
}

// TestParseFlags_Empty verifies that no arguments produce a zero config.
func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_Unknown verifies that unknown flags are reported.
func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"--no-such-flag"})
	assert.Error(t, err)
}
