package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_storage_mock.go -package=mock

// BlobStorage keeps one opaque blob per name inside a single flat namespace
// (a directory, a bbolt bucket or a table). Every overwrite and delete of an
// existing blob first moves its content to an immutable backup when backups
// are enabled.
//
// Operations on different names never interfere. Operations on the same
// name are not serialized unless the storage is wrapped with
// [NewLockedBlobStorage].
type BlobStorage interface {
	// Resolve maps name to its storage location, failing with ErrInvalidName
	// unless the canonical location lies directly inside the root.
	Resolve(name string) (string, error)

	// Read returns the content of the blob. The caller closes the reader.
	Read(ctx context.Context, name string) (io.ReadCloser, error)

	// Write stores a new version of a blob; see [WriteRequest].
	Write(ctx context.Context, req WriteRequest) error

	// Delete backs up and removes a blob.
	Delete(ctx context.Context, name string) error

	// List returns the sorted names of all blobs, including backups only
	// when includeBackups is set.
	List(ctx context.Context, includeBackups bool) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}

// WriteRequest describes one write.
//
//  1. Name and PreviousName are resolved; an invalid one fails the write.
//  2. Unless a blob exists at Name or at PreviousName, or AllowCreate is
//     set, the write fails with ErrBlocked.
//  3. A blob at PreviousName is backed up and removed (rename path).
//  4. A blob at Name is backed up and removed.
//  5. A new blob is created at Name from Content; ErrExists if one
//     appeared in the meantime.
type WriteRequest struct {
	Name         string
	PreviousName string
	Content      io.Reader
	AllowCreate  bool
}

// BlobOptions are shared by every backend.
type BlobOptions struct {
	// Backups enables backup-on-change.
	Backups bool
}
