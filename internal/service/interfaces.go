package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=StorageServiceWrapper

// StorageService serves RemoteStorage requests on top of a blob storage and
// applies the server's feature switches.
type StorageService interface {
	// Read returns the content of the named blob.
	Read(ctx context.Context, name string) (io.ReadCloser, error)
	// Write stores content under req.Name, renaming from req.PreviousName
	// when it is set.
	Write(ctx context.Context, req models.StorageRequest, content io.Reader) error
	// Delete removes the named blob.
	Delete(ctx context.Context, name string) error
	// List returns all blob names. Fails with ErrListingDisabled unless
	// listing is enabled.
	List(ctx context.Context, req models.StorageRequest) ([]string, error)
}

// StorageServiceWrapper defines middleware composition for StorageService.
// Implementations wrap an existing StorageService to add behavior such as
// validation.
type StorageServiceWrapper interface {
	Wrap(StorageService) StorageService
}

// SessionService drives one client login session: loading local and remote
// blobs, merging them, persisting every change and rotating the master
// password.
//
// Storage failures never abort an operation. They are reported through the
// dismissible error list of [models.SessionView] and announced to
// subscribers.
type SessionService interface {
	// LastLogin returns the remembered user name and cache flag.
	LastLogin(ctx context.Context) (username string, cacheLocally bool)
	// Login starts a session and loads the local, then the remote blob.
	Login(ctx context.Context, username, passphrase string, cacheLocally bool) error
	// Refresh reads the remote blob again and merges it.
	Refresh(ctx context.Context) error
	// SaveEntry creates or replaces an entry. When replacedID names a
	// different entry, that entry is removed.
	SaveEntry(ctx context.Context, entry models.Entry, replacedID string) error
	// DeleteEntry removes the entry with the given id.
	DeleteEntry(ctx context.Context, id string) error
	// ChangeMasterPassword re-keys the blob under a new passphrase.
	ChangeMasterPassword(ctx context.Context, newPassphrase string) error
	// Logout forgets the passphrase and all entries.
	Logout()

	// Touch records user activity.
	Touch()
	// LastActivity returns the time of the last Touch.
	LastActivity() time.Time
	// DismissError removes one message from the error list.
	DismissError(id int)

	// View returns a copy of the current session state.
	View() models.SessionView
	// Filter returns the entries whose id or user name contains text.
	Filter(text string) []models.Entry
	// Subscribe registers fn for every session event. Calling the returned
	// function unregisters it.
	Subscribe(fn func(models.SessionEvent)) (unsubscribe func())
	// Wait blocks until all in-flight remote writes have finished.
	Wait()
}
