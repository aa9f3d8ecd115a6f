package store

import (
	"context"
	"slices"
	"sync"
)

// lockedBlobStorage serializes mutations per name on top of another
// [BlobStorage]. Reads and listings are passed through unlocked.
type lockedBlobStorage struct {
	BlobStorage

	mu    sync.Mutex
	locks map[string]*nameLock
}

type nameLock struct {
	sync.Mutex
	refs int
}

// NewLockedBlobStorage wraps next so that writes and deletes touching the
// same name never overlap.
func NewLockedBlobStorage(next BlobStorage) BlobStorage {
	return &lockedBlobStorage{
		BlobStorage: next,
		locks:       make(map[string]*nameLock),
	}
}

// Write implements [BlobStorage].
func (s *lockedBlobStorage) Write(ctx context.Context, req WriteRequest) error {
	unlock := s.lock(req.Name, req.PreviousName)
	defer unlock()

	return s.BlobStorage.Write(ctx, req)
}

// Delete implements [BlobStorage].
func (s *lockedBlobStorage) Delete(ctx context.Context, name string) error {
	unlock := s.lock(name)
	defer unlock()

	return s.BlobStorage.Delete(ctx, name)
}

// lock acquires the locks of all non-empty names in sorted order, so two
// renames in opposite directions cannot deadlock.
func (s *lockedBlobStorage) lock(names ...string) func() {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			keys = append(keys, n)
		}
	}
	slices.Sort(keys)
	keys = slices.Compact(keys)

	held := make([]*nameLock, 0, len(keys))
	for _, k := range keys {
		l := s.acquire(k)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
			s.release(keys[i])
		}
	}
}

func (s *lockedBlobStorage) acquire(name string) *nameLock {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &nameLock{}
		s.locks[name] = l
	}
	l.refs++
	return l
}

func (s *lockedBlobStorage) release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.locks[name]
	l.refs--
	if l.refs == 0 {
		delete(s.locks, name)
	}
}
