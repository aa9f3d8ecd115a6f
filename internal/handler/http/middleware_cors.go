package http

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

const (
	originHeader      = "Origin"
	allowOriginHeader = "Access-Control-Allow-Origin"
)

// withSimpleCORS allows cross-origin requests only from pages served by the
// same host. Any other Origin fails the request.
func (h *Handler) withSimpleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get(originHeader)
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := allowedOrigin(origin, r.Host)
		if err != nil {
			h.fail(w, r, "*Handler.withSimpleCORS", err)
			return
		}

		w.Header().Set(allowOriginHeader, allowed)
		next.ServeHTTP(w, r)
	})
}

// allowedOrigin returns the Access-Control-Allow-Origin value for origin when
// it points at requestHost with an empty or root path.
func allowedOrigin(origin, requestHost string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrigin, origin)
	}
	if !strings.EqualFold(u.Hostname(), hostname(requestHost)) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrigin, origin)
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrigin, origin)
	}

	return u.Scheme + "://" + requestHost, nil
}

func hostname(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		return strings.Trim(hostport, "[]")
	}
	return host
}
