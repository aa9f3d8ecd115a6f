package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "passweb-client"

// HTTPClient is the resty client used to talk to a RemoteStorage endpoint.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that posts forms and expects text/plain
// answers. A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "text/plain").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
