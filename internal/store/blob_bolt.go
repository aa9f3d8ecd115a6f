package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/utils"
	bolt "go.etcd.io/bbolt"
)

const boltOpenTimeout = time.Second

var (
	blobsBucket    = []byte("blobs")
	modifiedBucket = []byte("modified")
	backupsBucket  = []byte("backups")
)

// boltBlobStorage keeps blobs as values of a single bbolt bucket. A write
// or delete runs in one update transaction, so backup, removal and create
// happen atomically.
type boltBlobStorage struct {
	db     *bolt.DB
	opts   BlobOptions
	logger *logger.Logger
}

// NewBoltBlobStorage opens (creating if needed) the bbolt file at path.
func NewBoltBlobStorage(path string, opts BlobOptions, log *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create bolt directory: %v", ErrIO, err)
	}

	db, err := bolt.Open(path, filePerm, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewBoltBlobStorage").Str("path", path).Msg("error opening bolt database")
		return nil, fmt.Errorf("%w: open bolt: %v", ErrIO, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{blobsBucket, modifiedBucket, backupsBucket} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init bolt buckets: %v", ErrIO, err)
	}

	log.Debug().Str("func", "NewBoltBlobStorage").Str("path", path).Msg("bolt blob storage ready")
	return &boltBlobStorage{db: db, opts: opts, logger: log}, nil
}

// Resolve implements [BlobStorage].
func (s *boltBlobStorage) Resolve(name string) (string, error) {
	return resolveName(virtualRoot, name)
}

// Read implements [BlobStorage].
func (s *boltBlobStorage) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	if _, err := resolveTarget(virtualRoot, name); err != nil {
		return nil, err
	}

	var content []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(blobsBucket).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		// v is only valid inside the transaction.
		content = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(content)), nil
}

// Write implements [BlobStorage].
func (s *boltBlobStorage) Write(ctx context.Context, req WriteRequest) error {
	if _, err := resolveTarget(virtualRoot, req.Name); err != nil {
		return err
	}
	if req.PreviousName != "" {
		if _, err := resolveTarget(virtualRoot, req.PreviousName); err != nil {
			return err
		}
	}

	content, err := io.ReadAll(req.Content)
	if err != nil {
		return fmt.Errorf("%w: read content: %v", ErrIO, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		blobs := tx.Bucket(blobsBucket)
		key := []byte(req.Name)

		exists := blobs.Get(key) != nil
		previousExists := req.PreviousName != "" && blobs.Get([]byte(req.PreviousName)) != nil
		if !exists && !previousExists && !req.AllowCreate {
			return fmt.Errorf("%w: %s", ErrBlocked, req.Name)
		}

		if previousExists {
			if err := s.retire(tx, req.PreviousName); err != nil {
				return err
			}
		}
		if blobs.Get(key) != nil {
			if err := s.retire(tx, req.Name); err != nil {
				return err
			}
		}

		if err := blobs.Put(key, content); err != nil {
			return fmt.Errorf("%w: put: %v", ErrIO, err)
		}
		return tx.Bucket(modifiedBucket).Put(key, encodeTime(time.Now()))
	})
}

// Delete implements [BlobStorage].
func (s *boltBlobStorage) Delete(ctx context.Context, name string) error {
	if _, err := resolveTarget(virtualRoot, name); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(blobsBucket).Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return s.retire(tx, name)
	})
}

// List implements [BlobStorage].
func (s *boltBlobStorage) List(ctx context.Context, includeBackups bool) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		buckets := [][]byte{blobsBucket}
		if includeBackups {
			buckets = append(buckets, backupsBucket)
		}
		for _, b := range buckets {
			if err := tx.Bucket(b).ForEach(func(k, _ []byte) error {
				names = append(names, string(k))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrIO, err)
	}

	sort.Strings(names)
	return names, nil
}

// Close implements [BlobStorage].
func (s *boltBlobStorage) Close() error {
	return s.db.Close()
}

// retire backs up (when enabled) and removes the blob name inside tx.
func (s *boltBlobStorage) retire(tx *bolt.Tx, name string) error {
	key := []byte(name)
	blobs := tx.Bucket(blobsBucket)
	modified := tx.Bucket(modifiedBucket)

	if s.opts.Backups {
		backups := tx.Bucket(backupsBucket)
		backup, err := freeBackupName(name, decodeTime(modified.Get(key)), func(candidate string) (bool, error) {
			return backups.Get([]byte(candidate)) != nil, nil
		})
		if err != nil {
			return err
		}
		if err := backups.Put([]byte(backup), bytes.Clone(blobs.Get(key))); err != nil {
			return fmt.Errorf("%w: backup: %v", ErrIO, err)
		}
		s.logger.Debug().Str("func", "*boltBlobStorage.retire").Str("backup", utils.ShortHash(backup)).Msg("backup created")
	}

	if err := blobs.Delete(key); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrIO, err)
	}
	return modified.Delete(key)
}

func encodeTime(t time.Time) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(t.UnixNano()))
}

func decodeTime(b []byte) time.Time {
	if len(b) != 8 {
		return time.Now()
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(b)))
}
