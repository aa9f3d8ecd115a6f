package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/utils"
)

const (
	formMethod       = "method"
	formName         = "name"
	formPreviousName = "previousName"
	formContent      = "content"
)

type httpRemoteStorage struct {
	client   *utils.HTTPClient
	endpoint string

	logger *logger.Logger
}

// NewHTTPRemoteStorage constructs an HTTP implementation of [RemoteStorage].
// It normalises and validates the endpoint URL from adapterCfg.HTTPAddress
// and configures the underlying client with the request timeout.
//
// Returns [ErrInvalidAddress] if the address is empty or cannot be parsed as
// a URL with scheme and host.
func NewHTTPRemoteStorage(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteStorage, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	return &httpRemoteStorage{
		client:   utils.NewHTTPClient(adapterCfg.RequestTimeout),
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Read implements [RemoteStorage]. The blob is requested with
// method=GET so the credential hash never appears in a URL.
func (h *httpRemoteStorage) Read(ctx context.Context, name string) (string, error) {
	return h.post(ctx, "read", map[string]string{
		formMethod: "GET",
		formName:   name,
	})
}

// Write implements [RemoteStorage].
func (h *httpRemoteStorage) Write(ctx context.Context, name, previousName, content string) error {
	form := map[string]string{
		formMethod:  "PUT",
		formName:    name,
		formContent: content,
	}
	if previousName != "" {
		form[formPreviousName] = previousName
	}

	_, err := h.post(ctx, "write", form)
	return err
}

// Delete implements [RemoteStorage].
func (h *httpRemoteStorage) Delete(ctx context.Context, name string) error {
	_, err := h.post(ctx, "delete", map[string]string{
		formMethod: "DELETE",
		formName:   name,
	})
	return err
}

func (h *httpRemoteStorage) post(ctx context.Context, op string, form map[string]string) (string, error) {
	log := logger.FromContextOr(ctx, h.logger)

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(h.endpoint)
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteStorage."+op).Msg("remote storage request failed")
		return "", transportError(op, err)
	}
	if err = checkResponse(op, resp); err != nil {
		log.Err(err).Str("func", "*httpRemoteStorage."+op).Int("status", resp.StatusCode()).Msg("remote storage rejected request")
		return "", err
	}

	return string(resp.Body()), nil
}
