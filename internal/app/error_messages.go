// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible message strings shared by the
// passweb client session and its terminal UI.
//
// Msg* constants are complete status messages pushed into the dismissible
// error list. Progress* constants are shown while a remote call is in
// flight. Keeping them in one place keeps the wording consistent between
// the session service, its tests and the UI.
package app

import "fmt"

const (
	// MsgUnsupportedSchema is reported when a blob decrypts but does not hold
	// a snapshot of the supported schema.
	MsgUnsupportedSchema = "Unsupported schema or corrupt data."

	// MsgCloudChangesMerged is reported when the cloud copy contained
	// changes that were merged into the local state and saved back.
	MsgCloudChangesMerged = "Cloud data had changes; local and cloud are now synchronized."

	// MsgMasterPasswordUpdateFailed is reported when the rename write under
	// the new master password did not reach the cloud.
	MsgMasterPasswordUpdateFailed = "Master password update failed; password unchanged!"

	// MsgLocalCacheFailure is reported when the local cache cannot be read
	// or written.
	MsgLocalCacheFailure = "Error accessing local cache."

	// MsgInvalidEntry is reported when the entry form is submitted without
	// an id or a password.
	MsgInvalidEntry = "Entries need a name and a password."

	// MsgEmptyMasterPassword is reported when an empty new master password
	// is submitted.
	MsgEmptyMasterPassword = "The new master password must not be empty."

	// MsgLoggedOutInactive is shown on the login screen after an
	// inactivity logout.
	MsgLoggedOutInactive = "Logged out after a period of inactivity."

	// LogDeleteFromCloudFailed is only logged, never shown.
	LogDeleteFromCloudFailed = "[Error deleting from cloud.]"
)

const (
	ProgressReadingFromCloud = "Reading from cloud..."
	ProgressSavingToCloud    = "Saving to cloud..."
)

const (
	readImplicationLocal   = "using local data"
	readImplicationNoLocal = "no local data available"
	readReason             = "Network problem or bad user name/password?"

	saveImplicationCached   = "Data was saved locally; cloud will be updated when possible."
	saveImplicationUncached = "Not caching, so data may be lost when the client is closed!"
)

// MsgDecryptionFailure is reported when a blob cannot be decoded with the
// current key.
func MsgDecryptionFailure(fromLocal bool) string {
	source := "cloud"
	if fromLocal {
		source = "local"
	}
	return fmt.Sprintf("Decryption failure for %s data. Wrong password?", source)
}

// MsgCloudReadFailure is reported when the remote read failed; haveLocal
// tells whether the session still shows entries.
func MsgCloudReadFailure(haveLocal bool) string {
	implication := readImplicationNoLocal
	if haveLocal {
		implication = readImplicationLocal
	}
	return fmt.Sprintf("Error reading from cloud; %s. (%s)", implication, readReason)
}

// MsgCloudSaveFailure is reported when a remote write failed.
func MsgCloudSaveFailure(cacheLocally bool) string {
	implication := saveImplicationUncached
	if cacheLocally {
		implication = saveImplicationCached
	}
	return "Error saving to cloud. " + implication
}
