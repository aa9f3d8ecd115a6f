package adapter

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// checkResponse turns a non-2xx answer into ErrNetworkFailure. The server
// answers every failure with an empty 500, so the status text stands in for
// a missing body.
func checkResponse(op string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := strings.TrimSpace(resp.String())
	if detail == "" {
		detail = resp.Status()
	}
	return fmt.Errorf("%w: %s: %s", ErrNetworkFailure, op, detail)
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNetworkFailure, op, err)
}
