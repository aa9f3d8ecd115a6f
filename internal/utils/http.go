package utils

import (
	"io"
	"net/http"
)

// WriteText writes body to the HTTP response as text/plain.
//
// It sets the "Content-Type" header to "text/plain; charset=utf-8" and writes
// the provided HTTP status code before sending the response body.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	body       - response text, may be empty
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if writing the body fails
//
// Example usage:
//
//	WriteText(w, content, http.StatusOK)
//	WriteText(w, "", http.StatusInternalServerError)
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	if body == "" {
		return 0, nil
	}
	return io.WriteString(w, body)
}
