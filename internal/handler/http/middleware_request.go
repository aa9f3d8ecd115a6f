package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/utils"
	"github.com/MKhiriev/go-pass-web/models"
)

const (
	paramMethod       = "method"
	paramName         = "name"
	paramPreviousName = "previousName"
	paramContent      = "content"
	paramBypass       = "bypass"
	paramBackups      = "backups"
)

// withStorageRequest rejects requests outside the base path and stores the
// parsed models.StorageRequest in the request context.
func (h *Handler) withStorageRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := h.parseStorageRequest(r)
		if err != nil {
			h.fail(w, r, "*Handler.withStorageRequest", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithStorageRequest(r.Context(), req)))
	})
}

func (h *Handler) parseStorageRequest(r *http.Request) (models.StorageRequest, error) {
	if !h.matchesBasePath(r.URL.Path) {
		return models.StorageRequest{}, fmt.Errorf("%w: %q", ErrUnsupportedPath, r.URL.Path)
	}

	var (
		req    models.StorageRequest
		params url.Values
	)

	switch r.Method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		req.Method, _ = models.ParseStorageMethod(r.Method)
		params = r.URL.Query()
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			return models.StorageRequest{}, fmt.Errorf("%w: %w", ErrMalformedForm, err)
		}
		params = r.Form

		method, ok := lookup(params, paramMethod)
		if !ok {
			return models.StorageRequest{}, ErrMissingMethod
		}
		if req.Method, ok = models.ParseStorageMethod(method); !ok {
			return models.StorageRequest{}, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
		}
		req.Content, req.HasContent = lookup(params, paramContent)
	default:
		return models.StorageRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, r.Method)
	}

	req.Name, req.HasName = lookup(params, paramName)
	req.PreviousName, req.HasPreviousName = lookup(params, paramPreviousName)
	_, req.Bypass = params[paramBypass]
	_, req.IncludeBackups = params[paramBackups]

	return req, nil
}

func (h *Handler) matchesBasePath(path string) bool {
	path = strings.ToLower(path)
	base := strings.ToLower(h.basePath)
	return strings.HasSuffix(path, base) || strings.HasSuffix(path, base+"/")
}

func lookup(values url.Values, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}
