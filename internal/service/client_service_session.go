package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/adapter"
	"github.com/MKhiriev/go-pass-web/internal/app"
	"github.com/MKhiriev/go-pass-web/internal/crypto"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/merge"
	"github.com/MKhiriev/go-pass-web/internal/store"
	"github.com/MKhiriev/go-pass-web/internal/utils"
	"github.com/MKhiriev/go-pass-web/internal/validators"
	"github.com/MKhiriev/go-pass-web/models"
)

const (
	settingUsername = "username"
	settingCache    = "cache"
)

type sessionService struct {
	cache     store.LocalCache
	settings  store.Settings
	remote    adapter.RemoteStorage
	codec     crypto.BlobCodec
	validator validators.Validator

	uniqueText string
	now        func() time.Time

	mu sync.Mutex
	// generation changes on every login and logout; results of remote calls
	// started under an older generation are dropped.
	generation   int
	state        models.SessionState
	username     string
	passphrase   string
	cacheLocally bool
	snapshot     models.UserDataSnapshot
	errors       []models.StatusError
	nextErrorID  int
	progress     string
	pending      int
	// writes holds saves not yet sent to the cloud, oldest first. A single
	// goroutine drains it while writing is set; it survives logout so that
	// saves made before it still reach the cloud.
	writes  []remoteWrite
	writing bool

	lastActivity atomic.Int64

	subsMu    sync.Mutex
	subs      map[int]func(models.SessionEvent)
	nextSubID int

	inflight sync.WaitGroup

	logger *logger.Logger
}

// NewSessionService constructs the client session orchestrator.
//
// uniqueText is mixed into every credential hash and encryption key so
// that the same credentials produce different blobs on different
// installations.
func NewSessionService(
	cache store.LocalCache,
	settings store.Settings,
	remote adapter.RemoteStorage,
	codec crypto.BlobCodec,
	uniqueText string,
	logger *logger.Logger,
) SessionService {
	s := &sessionService{
		cache:       cache,
		settings:    settings,
		remote:      remote,
		codec:       codec,
		validator:   validators.NewEntryValidator(),
		uniqueText:  uniqueText,
		now:         time.Now,
		snapshot:    models.NewUserDataSnapshot(),
		nextErrorID: 1,
		subs:        make(map[int]func(models.SessionEvent)),
		logger:      logger,
	}
	s.lastActivity.Store(s.now().UnixNano())
	return s
}

// ── Login and refresh ───────────────────────────────────────────────────────

func (s *sessionService) LastLogin(ctx context.Context) (string, bool) {
	username, _, err := s.settings.Get(ctx, settingUsername)
	if err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.LastLogin").Msg("failed to read remembered user name")
	}

	raw, _, err := s.settings.Get(ctx, settingCache)
	if err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.LastLogin").Msg("failed to read remembered cache flag")
	}
	cacheLocally, _ := strconv.ParseBool(raw)

	return username, cacheLocally
}

func (s *sessionService) Login(ctx context.Context, username, passphrase string, cacheLocally bool) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	s.Touch()
	s.rememberLogin(ctx, username, cacheLocally)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = models.SessionLoadingLocal
	s.username = username
	s.passphrase = passphrase
	s.cacheLocally = cacheLocally
	s.snapshot = models.NewUserDataSnapshot()
	s.errors = nil
	s.progress = ""
	s.pending = 0
	name := s.credentialHashLocked()
	s.mu.Unlock()
	s.emit(models.EventStateChanged)

	if !cacheLocally {
		s.removeLocal(ctx, name)
	}

	if blob, ok := s.readLocal(ctx, gen, name); ok {
		s.importBlob(ctx, gen, blob, true)
	}

	if !s.setState(gen, models.SessionLoadingRemote) {
		return nil
	}
	s.readRemote(ctx, gen)
	s.settle(gen)

	return nil
}

func (s *sessionService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.state == models.SessionLoggedOut {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	gen := s.generation
	s.mu.Unlock()

	s.readRemote(ctx, gen)
	return nil
}

func (s *sessionService) rememberLogin(ctx context.Context, username string, cacheLocally bool) {
	if err := s.settings.Set(ctx, settingUsername, username); err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.rememberLogin").Msg("failed to remember user name")
	}
	if err := s.settings.Set(ctx, settingCache, strconv.FormatBool(cacheLocally)); err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.rememberLogin").Msg("failed to remember cache flag")
	}
}

// readRemote fetches the blob of the current identity and merges it.
func (s *sessionService) readRemote(ctx context.Context, gen int) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	name := s.credentialHashLocked()
	s.progress = app.ProgressReadingFromCloud
	s.mu.Unlock()
	s.emit(models.EventProgressChanged)

	blob, err := s.remote.Read(ctx, name)

	s.mu.Lock()
	stale := gen != s.generation
	if !stale && s.progress == app.ProgressReadingFromCloud {
		s.progress = ""
	}
	haveLocal := len(s.snapshot.Entries) > 0
	s.mu.Unlock()
	if stale {
		return
	}
	s.emit(models.EventProgressChanged)

	if err != nil {
		s.log(ctx).Err(err).
			Str("func", "*sessionService.readRemote").
			Str("name", utils.ShortHash(name)).
			Msg("failed to read from cloud")
		s.reportError(gen, app.MsgCloudReadFailure(haveLocal))
		return
	}

	s.importBlob(ctx, gen, blob, false)
}

// importBlob decodes blob and merges it into the session snapshot.
func (s *sessionService) importBlob(ctx context.Context, gen int, blob string, fromLocal bool) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	key := s.encryptionKeyLocked()
	s.mu.Unlock()

	incoming, err := s.codec.Decode(blob, key)
	switch {
	case errors.Is(err, crypto.ErrUnsupportedSchema):
		s.reportError(gen, app.MsgUnsupportedSchema)
		return
	case err != nil:
		s.log(ctx).Warn().Err(err).
			Str("func", "*sessionService.importBlob").
			Bool("from_local", fromLocal).
			Msg("failed to decode blob")
		s.reportError(gen, app.MsgDecryptionFailure(fromLocal))
		return
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	result := merge.Merge(s.snapshot, incoming)
	switch result.Outcome {
	case merge.OutcomeAdopted:
		s.snapshot.Timestamp = incoming.Timestamp
		s.snapshot.Entries = result.Entries
		s.mu.Unlock()
		s.emit(models.EventEntriesChanged)
		if !fromLocal {
			s.saveLocal(ctx, gen)
		}
	case merge.OutcomeUnchanged:
		s.snapshot.Timestamp = incoming.Timestamp
		s.mu.Unlock()
		s.saveLocal(ctx, gen)
	case merge.OutcomeMerged:
		s.snapshot.Entries = result.Entries
		s.mu.Unlock()
		s.emit(models.EventEntriesChanged)
		s.persist(ctx, gen)
		if !fromLocal {
			s.reportError(gen, app.MsgCloudChangesMerged)
		}
	default:
		s.mu.Unlock()
		return
	}

	s.log(ctx).Debug().
		Str("func", "*sessionService.importBlob").
		Bool("from_local", fromLocal).
		Int("outcome", int(result.Outcome)).
		Int("entries", len(result.Entries)).
		Msg("blob imported")
}

// ── Mutations ───────────────────────────────────────────────────────────────

func (s *sessionService) SaveEntry(ctx context.Context, entry models.Entry, replacedID string) error {
	s.Touch()

	entry.ID = strings.TrimSpace(entry.ID)
	entry.Notes = strings.TrimSpace(entry.Notes)
	if err := s.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	s.mu.Lock()
	if s.state == models.SessionLoggedOut {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	entry.Timestamp = s.now().UnixMilli()
	entry.Weak = merge.IsWeakPassword(entry.Password)

	entries := slices.Clone(s.snapshot.Entries)
	if replacedID != "" && merge.FoldID(replacedID) != merge.FoldID(entry.ID) {
		if i := merge.IndexOf(entries, replacedID); i >= 0 {
			entries = slices.Delete(entries, i, i+1)
		}
	}
	if i := merge.IndexOf(entries, entry.ID); i >= 0 {
		entries[i] = entry
	} else {
		entries = append(entries, entry)
	}
	merge.Sort(entries)
	s.snapshot.Entries = entries
	gen := s.generation
	s.mu.Unlock()

	s.emit(models.EventEntriesChanged)
	s.persist(ctx, gen)
	return nil
}

func (s *sessionService) DeleteEntry(ctx context.Context, id string) error {
	s.Touch()

	s.mu.Lock()
	if s.state == models.SessionLoggedOut {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	i := merge.IndexOf(s.snapshot.Entries, id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	s.snapshot.Entries = slices.Delete(slices.Clone(s.snapshot.Entries), i, i+1)
	gen := s.generation
	s.mu.Unlock()

	s.emit(models.EventEntriesChanged)
	s.persist(ctx, gen)
	return nil
}

func (s *sessionService) ChangeMasterPassword(ctx context.Context, newPassphrase string) error {
	s.Touch()
	// With an empty passphrase the encryption key is just the installation
	// text, which anyone pointing at this server knows.
	if newPassphrase == "" {
		return ErrEmptyMasterPassword
	}

	s.mu.Lock()
	if s.state == models.SessionLoggedOut {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	if newPassphrase == s.passphrase {
		s.mu.Unlock()
		return nil
	}
	change := &passwordChange{
		previousName:       s.credentialHashLocked(),
		previousPassphrase: s.passphrase,
	}
	s.passphrase = newPassphrase

	// Queued under the same lock as the passphrase change, so no save under
	// the new name can reach the cloud before the rename.
	s.enqueueLocked(ctx, s.generation, change)
	s.mu.Unlock()

	s.emit(models.EventStateChanged)
	return nil
}

// passwordChange is carried by the save that renames the blob after a
// master password change.
type passwordChange struct {
	previousName       string
	previousPassphrase string
}

// remoteWrite is one queued save. The snapshot is encoded by the writer so
// that the local cache and the cloud see saves in the order they were made.
type remoteWrite struct {
	ctx          context.Context
	gen          int
	snapshot     models.UserDataSnapshot
	name         string
	key          string
	cacheLocally bool
	change       *passwordChange
}

// persist stamps the snapshot and queues it for the local cache and the
// cloud.
func (s *sessionService) persist(ctx context.Context, gen int) {
	s.mu.Lock()
	queued := s.enqueueLocked(ctx, gen, nil)
	s.mu.Unlock()

	if queued {
		s.emit(models.EventStateChanged)
	}
}

// enqueueLocked refuses to queue anything once the session that asked for
// the save has logged out.
func (s *sessionService) enqueueLocked(ctx context.Context, gen int, change *passwordChange) bool {
	if gen != s.generation || s.state == models.SessionLoggedOut {
		return false
	}

	s.snapshot.Timestamp = max(s.now().UnixMilli(), s.snapshot.Timestamp+1)
	s.writes = append(s.writes, remoteWrite{
		ctx:          context.WithoutCancel(ctx),
		gen:          gen,
		snapshot:     s.snapshot.Clone(),
		name:         s.credentialHashLocked(),
		key:          s.encryptionKeyLocked(),
		cacheLocally: s.cacheLocally,
		change:       change,
	})
	s.inflight.Add(1)
	s.pending++
	s.state = models.SessionSaving
	s.progress = app.ProgressSavingToCloud

	if !s.writing {
		s.writing = true
		go s.drainWrites()
	}
	return true
}

func (s *sessionService) drainWrites() {
	for {
		s.mu.Lock()
		if len(s.writes) == 0 {
			s.writing = false
			s.mu.Unlock()
			return
		}
		batch := s.takeBatchLocked()
		s.mu.Unlock()

		s.flush(batch)
	}
}

// takeBatchLocked removes the head of the queue together with the saves
// right behind it that go to the same blob in the same session. Only the
// newest of them needs to be written.
func (s *sessionService) takeBatchLocked() []remoteWrite {
	n := 1
	for n < len(s.writes) && s.writes[n].gen == s.writes[0].gen && s.writes[n].name == s.writes[0].name {
		n++
	}
	batch := slices.Clone(s.writes[:n])
	s.writes = slices.Delete(s.writes, 0, n)
	return batch
}

// flush writes the newest snapshot of batch, renaming the blob when any
// save in it carries a password change.
func (s *sessionService) flush(batch []remoteWrite) {
	newest := batch[len(batch)-1]
	var change *passwordChange
	for _, w := range batch {
		if w.change != nil {
			change = w.change
			break
		}
	}

	ok := s.writeRemote(newest, change)
	switch {
	case ok && change != nil:
		if err := s.remote.Delete(newest.ctx, change.previousName); err != nil {
			s.log(newest.ctx).Err(err).
				Str("func", "*sessionService.flush").
				Str("name", utils.ShortHash(change.previousName)).
				Msg(app.LogDeleteFromCloudFailed)
		}
	case !ok && change != nil:
		batch = append(batch, s.revertPasswordChange(newest, change, len(batch) > 1)...)
	}

	for _, w := range batch {
		s.finishSave(w.gen)
		s.inflight.Done()
	}
}

// revertPasswordChange undoes a rename the cloud refused. Every later save
// of the session was made under the refused name: those are dropped and
// returned. When the refused write or a dropped one carried edits, the
// current snapshot is saved again under the restored name.
func (s *sessionService) revertPasswordChange(failed remoteWrite, change *passwordChange, carriedEdits bool) []remoteWrite {
	ctx := failed.ctx

	s.mu.Lock()
	var dropped []remoteWrite
	s.writes = slices.DeleteFunc(s.writes, func(w remoteWrite) bool {
		if w.gen != failed.gen {
			return false
		}
		dropped = append(dropped, w)
		return true
	})
	current := failed.gen == s.generation
	if current {
		s.passphrase = change.previousPassphrase
	}
	s.mu.Unlock()

	if !current {
		return dropped
	}

	s.removeLocal(ctx, failed.name)
	s.reportError(failed.gen, app.MsgMasterPasswordUpdateFailed)
	if carriedEdits || len(dropped) > 0 {
		s.persist(ctx, failed.gen)
	} else {
		s.saveLocal(ctx, failed.gen)
	}
	return dropped
}

func (s *sessionService) writeRemote(w remoteWrite, change *passwordChange) bool {
	previousName := ""
	if change != nil {
		previousName = change.previousName
		// The old cache entry is encrypted with the old key; it goes first.
		s.removeLocal(w.ctx, previousName)
	}

	blob, err := s.codec.Encode(w.snapshot, w.key)
	if err != nil {
		s.log(w.ctx).Err(err).Str("func", "*sessionService.writeRemote").Msg("failed to encode snapshot")
		s.reportError(w.gen, app.MsgCloudSaveFailure(false))
		return false
	}

	if w.cacheLocally {
		s.putLocal(w.ctx, w.gen, w.name, blob)
	}

	if err := s.remote.Write(w.ctx, w.name, previousName, blob); err != nil {
		s.log(w.ctx).Err(err).
			Str("func", "*sessionService.writeRemote").
			Str("name", utils.ShortHash(w.name)).
			Msg("failed to save to cloud")
		s.reportError(w.gen, app.MsgCloudSaveFailure(w.cacheLocally))
		return false
	}
	return true
}

func (s *sessionService) finishSave(gen int) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.pending--
	if s.pending == 0 {
		s.progress = ""
		if s.state == models.SessionSaving {
			s.state = models.SessionReady
		}
	}
	s.mu.Unlock()
	s.emit(models.EventStateChanged)
}

func (s *sessionService) Logout() {
	s.mu.Lock()
	if s.state == models.SessionLoggedOut {
		s.mu.Unlock()
		return
	}
	s.generation++
	s.state = models.SessionLoggedOut
	s.passphrase = ""
	s.snapshot = models.NewUserDataSnapshot()
	s.errors = nil
	s.progress = ""
	s.pending = 0
	s.mu.Unlock()

	s.emit(models.EventLoggedOut)
}

// ── Local cache ─────────────────────────────────────────────────────────────

func (s *sessionService) readLocal(ctx context.Context, gen int, name string) (string, bool) {
	blob, ok, err := s.cache.Get(ctx, name)
	if err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.readLocal").Msg("failed to read local cache")
		s.reportError(gen, app.MsgLocalCacheFailure)
		return "", false
	}
	return blob, ok
}

// saveLocal encodes the current snapshot into the local cache when caching
// is enabled.
func (s *sessionService) saveLocal(ctx context.Context, gen int) {
	s.mu.Lock()
	if gen != s.generation || !s.cacheLocally {
		s.mu.Unlock()
		return
	}
	snapshot := s.snapshot.Clone()
	name := s.credentialHashLocked()
	key := s.encryptionKeyLocked()
	s.mu.Unlock()

	blob, err := s.codec.Encode(snapshot, key)
	if err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.saveLocal").Msg("failed to encode snapshot")
		s.reportError(gen, app.MsgLocalCacheFailure)
		return
	}
	s.putLocal(ctx, gen, name, blob)
}

func (s *sessionService) putLocal(ctx context.Context, gen int, name, blob string) {
	if err := s.cache.Put(ctx, name, blob); err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.putLocal").Msg("failed to write local cache")
		s.reportError(gen, app.MsgLocalCacheFailure)
	}
}

func (s *sessionService) removeLocal(ctx context.Context, name string) {
	if err := s.cache.Remove(ctx, name); err != nil {
		s.log(ctx).Err(err).Str("func", "*sessionService.removeLocal").Msg("failed to remove local cache entry")
	}
}

// ── State and events ────────────────────────────────────────────────────────

func (s *sessionService) Touch() {
	s.lastActivity.Store(s.now().UnixNano())
}

func (s *sessionService) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}

func (s *sessionService) DismissError(id int) {
	s.mu.Lock()
	i := slices.IndexFunc(s.errors, func(e models.StatusError) bool { return e.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.errors = slices.Delete(slices.Clone(s.errors), i, i+1)
	s.mu.Unlock()

	s.emit(models.EventErrorsChanged)
}

func (s *sessionService) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *sessionService) Filter(text string) []models.Entry {
	return merge.Filter(s.View().Snapshot.Entries, text)
}

func (s *sessionService) Subscribe(fn func(models.SessionEvent)) func() {
	s.subsMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *sessionService) Wait() {
	s.inflight.Wait()
}

// reportError puts message on top of the error list.
func (s *sessionService) reportError(gen int, message string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.errors = slices.Insert(slices.Clone(s.errors), 0, models.StatusError{ID: s.nextErrorID, Message: message})
	s.nextErrorID++
	s.mu.Unlock()

	s.emit(models.EventErrorsChanged)
}

// setState moves the session to state. It reports false when the session
// has been replaced in the meantime.
func (s *sessionService) setState(gen int, state models.SessionState) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	s.state = state
	s.mu.Unlock()

	s.emit(models.EventStateChanged)
	return true
}

// settle ends loading: Saving while writes are in flight, Ready otherwise.
func (s *sessionService) settle(gen int) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	if s.pending > 0 {
		s.state = models.SessionSaving
	} else {
		s.state = models.SessionReady
	}
	s.mu.Unlock()

	s.emit(models.EventStateChanged)
}

func (s *sessionService) emit(kind models.SessionEventKind) {
	event := models.SessionEvent{Kind: kind, View: s.View()}

	s.subsMu.Lock()
	subs := make([]func(models.SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}

func (s *sessionService) viewLocked() models.SessionView {
	return models.SessionView{
		State:        s.state,
		Username:     s.username,
		CacheLocally: s.cacheLocally,
		Snapshot:     s.snapshot.Clone(),
		Errors:       slices.Clone(s.errors),
		Progress:     s.progress,
		Pending:      s.pending,
	}
}

func (s *sessionService) credentialHashLocked() string {
	return crypto.CredentialHash(s.username, s.passphrase, s.uniqueText)
}

func (s *sessionService) encryptionKeyLocked() string {
	return crypto.EncryptionKey(s.passphrase, s.uniqueText)
}

func (s *sessionService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}
