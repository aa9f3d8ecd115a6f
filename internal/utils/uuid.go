package utils

import "github.com/google/uuid"

// NewTraceID returns a UUIDv7 so trace ids sort by arrival time. It falls
// back to a random UUIDv4 when no v7 id can be made.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
