package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/utils"
	"github.com/MKhiriev/go-pass-web/models"
)

const listSeparator = "\r\n"

// storage serves the RemoteStorage operations. A get without a name is a
// listing.
func (h *Handler) storage(w http.ResponseWriter, r *http.Request) {
	req, ok := utils.GetStorageRequestFromContext(r.Context())
	if !ok {
		var err error
		if req, err = h.parseStorageRequest(r); err != nil {
			h.fail(w, r, "*Handler.storage", err)
			return
		}
	}

	switch {
	case req.Method == models.StorageMethodGet && req.Name == "":
		h.list(w, r, req)
	case req.Method == models.StorageMethodGet:
		h.read(w, r, req)
	case req.Method == models.StorageMethodPut:
		h.write(w, r, req)
	case req.Method == models.StorageMethodDelete:
		h.delete(w, r, req)
	default:
		h.fail(w, r, "*Handler.storage", ErrUnsupportedMethod)
	}
}

func (h *Handler) read(w http.ResponseWriter, r *http.Request, req models.StorageRequest) {
	rc, err := h.services.StorageService.Read(r.Context(), req.Name)
	if err != nil {
		h.fail(w, r, "*Handler.read", err)
		return
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		h.fail(w, r, "*Handler.read", err)
		return
	}

	_, _ = utils.WriteText(w, string(content), http.StatusOK)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, req models.StorageRequest) {
	var content io.Reader = r.Body
	if req.HasContent {
		content = strings.NewReader(req.Content)
	} else if r.Method == http.MethodPost {
		// the form already consumed the body
		content = strings.NewReader("")
	}

	if err := h.services.StorageService.Write(r.Context(), req, content); err != nil {
		h.fail(w, r, "*Handler.write", err)
		return
	}

	_, _ = utils.WriteText(w, "", http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, req models.StorageRequest) {
	if err := h.services.StorageService.Delete(r.Context(), req.Name); err != nil {
		h.fail(w, r, "*Handler.delete", err)
		return
	}

	_, _ = utils.WriteText(w, "", http.StatusOK)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, req models.StorageRequest) {
	names, err := h.services.StorageService.List(r.Context(), req)
	if err != nil {
		h.fail(w, r, "*Handler.list", err)
		return
	}

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(listSeparator)
	}

	_, _ = utils.WriteText(w, b.String(), http.StatusOK)
}

// fail answers with an empty 500. The cause is only logged.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromContextOr(r.Context(), h.logger)
	log.Err(err).
		Str("func", fn).
		Str("reason", reasonFromError(err)).
		Msg("storage request failed")

	_, _ = utils.WriteText(w, "", http.StatusInternalServerError)
}
