// Package workers provides the background jobs of the client: a periodic
// cloud refresh and the inactivity logout. A Workers aggregate runs them
// together until the client shuts down.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and returns
// a non-nil error only when the job cannot continue.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
