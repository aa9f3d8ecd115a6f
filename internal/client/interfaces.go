// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Runner is a component that runs until ctx is cancelled. The terminal UI
// and the background workers both implement it.
type Runner interface {
	Run(ctx context.Context) error
}
