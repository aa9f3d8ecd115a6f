// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge reconciles two versions of a user's entry collection.
//
// Both versions are [models.UserDataSnapshot] values: the snapshot already
// held by the session and a freshly decoded one coming from the local cache
// or from remote storage. Reconciliation is driven only by timestamps. An
// entry missing from one side counts as deleted there when that side's
// snapshot timestamp is newer than the entry, and as a new addition on the
// other side otherwise (tombstone-by-omission).
package merge
