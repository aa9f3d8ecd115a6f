// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRemoteStorage(t *testing.T, serverURL string) RemoteStorage {
	t.Helper()
	r, err := NewHTTPRemoteStorage(config.ClientAdapter{
		HTTPAddress:    serverURL + "/RemoteStorage",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return r
}

type captured struct {
	PostForm url.Values
	RawQuery string
}

// formServer records the form of the last POST and answers with status and
// body.
func formServer(t *testing.T, status int, body string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/RemoteStorage", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		got.PostForm = r.PostForm
		got.RawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── Read ────────────────────────────────────────────────────────────────────

func TestRead_Success(t *testing.T) {
	var got captured
	srv := formServer(t, http.StatusOK, " blob\r\n", &got)

	blob, err := newTestRemoteStorage(t, srv.URL).Read(context.Background(), "hash")

	require.NoError(t, err)
	assert.Equal(t, " blob\r\n", blob, "content is returned untouched")
	assert.Equal(t, "GET", got.PostForm.Get("method"))
	assert.Equal(t, "hash", got.PostForm.Get("name"))
	assert.Empty(t, got.RawQuery, "credential hash must not travel in the URL")
}

func TestRead_ServerError(t *testing.T) {
	var got captured
	srv := formServer(t, http.StatusInternalServerError, "", &got)

	_, err := newTestRemoteStorage(t, srv.URL).Read(context.Background(), "hash")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Contains(t, err.Error(), "500")
}

func TestRead_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newTestRemoteStorage(t, addr).Read(context.Background(), "hash")

	assert.ErrorIs(t, err, ErrNetworkFailure)
}

// ── Write / Delete ──────────────────────────────────────────────────────────

func TestWrite_SendsForm(t *testing.T) {
	tests := []struct {
		name         string
		previousName string
		wantPrevious bool
	}{
		{"plain write", "", false},
		{"rename", "old", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got captured
			srv := formServer(t, http.StatusOK, "", &got)

			err := newTestRemoteStorage(t, srv.URL).Write(context.Background(), "new", tt.previousName, "content+/=")

			require.NoError(t, err)
			assert.Equal(t, "PUT", got.PostForm.Get("method"))
			assert.Equal(t, "new", got.PostForm.Get("name"))
			assert.Equal(t, "content+/=", got.PostForm.Get("content"))
			_, has := got.PostForm["previousName"]
			assert.Equal(t, tt.wantPrevious, has)
			assert.Equal(t, tt.previousName, got.PostForm.Get("previousName"))
		})
	}
}

func TestDelete_SendsForm(t *testing.T) {
	var got captured
	srv := formServer(t, http.StatusOK, "", &got)

	require.NoError(t, newTestRemoteStorage(t, srv.URL).Delete(context.Background(), "hash"))
	assert.Equal(t, "DELETE", got.PostForm.Get("method"))
	assert.Equal(t, "hash", got.PostForm.Get("name"))
}

func TestDelete_Failure(t *testing.T) {
	var got captured
	srv := formServer(t, http.StatusServiceUnavailable, "busy", &got)

	err := newTestRemoteStorage(t, srv.URL).Delete(context.Background(), "hash")
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Contains(t, err.Error(), "busy")
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPRemoteStorage_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPRemoteStorage(config.ClientAdapter{HTTPAddress: addr}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, "%q", addr)
	}
}

func Test_normalizeEndpoint(t *testing.T) {
	got, err := normalizeEndpoint("localhost:8080/RemoteStorage")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/RemoteStorage", got)
}
