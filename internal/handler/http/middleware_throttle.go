package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"golang.org/x/time/rate"
)

// Throttle admits at most one request per second across all clients. Requests
// queue behind each other instead of being rejected, which slows enumeration
// of storage names.
type Throttle struct {
	limiter *rate.Limiter
}

func NewThrottle() *Throttle {
	return NewThrottleWithInterval(time.Second)
}

func NewThrottleWithInterval(interval time.Duration) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Middleware delays the request until its reserved slot. A client that goes
// away while waiting gives its slot back.
func (t *Throttle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reservation := t.limiter.Reserve()
		delay := reservation.Delay()
		if delay <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			reservation.Cancel()
			logger.FromRequest(r).Debug().
				Str("func", "*Throttle.Middleware").
				Dur("delay", delay).
				Msg("client left while throttled")
		}
	})
}
