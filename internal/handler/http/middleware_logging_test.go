package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context carries a logger writing
// to buf, the same way withTraceID attaches one.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		target           string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
		checkLogMissing  []string
	}{
		{
			name:            "read 200",
			method:          http.MethodGet,
			target:          "/RemoteStorage",
			handlerStatus:   http.StatusOK,
			handlerResponse: "blob",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/RemoteStorage"`,
				`"status":200`,
				`"size":4`,
			},
		},
		{
			name:          "failure 500",
			method:        http.MethodPut,
			target:        "/RemoteStorage",
			handlerStatus: http.StatusInternalServerError,
			checkLogContains: []string{
				`"method":"PUT"`,
				`"status":500`,
				`"size":0`,
			},
		},
		{
			name:          "query string is not logged",
			method:        http.MethodGet,
			target:        "/RemoteStorage?name=secret-hash",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"uri":"/RemoteStorage"`,
				`"duration":`,
			},
			checkLogMissing: []string{"secret-hash"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected)
			}
			for _, missing := range tt.checkLogMissing {
				assert.NotContains(t, logOutput, missing)
			}
		})
	}
}
