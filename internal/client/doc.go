// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI next to the background workers (cloud refresh and
// inactivity logout) and, once the UI exits, waits for pending cloud writes
// before the process ends.
package client
