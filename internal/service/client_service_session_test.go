// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/app"
	"github.com/MKhiriev/go-pass-web/internal/crypto"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/mock"
	"github.com/MKhiriev/go-pass-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUniqueText = "PASSWEB.EXAMPLE.COM"
	testUser       = "alice"
	testPass       = "correct horse"
	testNow        = int64(1_700_000_000_000)
)

// plainCodec stands in for the real codec: the key is a readable prefix so
// a wrong key fails like a wrong password would.
type plainCodec struct{}

func (plainCodec) Encode(snapshot models.UserDataSnapshot, key string) (string, error) {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return key + "|" + string(b), nil
}

func (plainCodec) Decode(blob string, key string) (models.UserDataSnapshot, error) {
	payload, ok := strings.CutPrefix(blob, key+"|")
	if !ok {
		return models.UserDataSnapshot{}, crypto.ErrDecodeFailure
	}

	var snapshot models.UserDataSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return models.UserDataSnapshot{}, crypto.ErrDecodeFailure
	}
	if snapshot.Schema != models.SchemaVersion {
		return models.UserDataSnapshot{}, crypto.ErrUnsupportedSchema
	}
	return snapshot, nil
}

type sessionFixture struct {
	svc      *sessionService
	cache    *mock.MockLocalCache
	settings *mock.MockSettings
	remote   *mock.MockRemoteStorage
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &sessionFixture{
		cache:    mock.NewMockLocalCache(ctrl),
		settings: mock.NewMockSettings(ctrl),
		remote:   mock.NewMockRemoteStorage(ctrl),
	}
	f.svc = NewSessionService(f.cache, f.settings, f.remote, plainCodec{}, testUniqueText, logger.Nop()).(*sessionService)
	f.svc.now = func() time.Time { return time.UnixMilli(testNow) }
	f.settings.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Cleanup(f.svc.Wait)
	return f
}

func nameFor(passphrase string) string {
	return crypto.CredentialHash(testUser, passphrase, testUniqueText)
}

func blobFor(t *testing.T, passphrase string, snapshot models.UserDataSnapshot) string {
	t.Helper()
	blob, err := plainCodec{}.Encode(snapshot, crypto.EncryptionKey(passphrase, testUniqueText))
	require.NoError(t, err)
	return blob
}

func entry(id string, ts int64) models.Entry {
	return models.Entry{ID: id, Username: id + "-user", Password: "p@ssw0rd!" + id, Timestamp: ts}
}

func snapshotOf(ts int64, entries ...models.Entry) models.UserDataSnapshot {
	return models.UserDataSnapshot{Schema: models.SchemaVersion, Timestamp: ts, Entries: entries}
}

func messages(view models.SessionView) []string {
	out := make([]string, 0, len(view.Errors))
	for _, e := range view.Errors {
		out = append(out, e.Message)
	}
	return out
}

func ids(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

// loginWithRemote logs in with caching on, an empty local cache and the
// given remote snapshot.
func (f *sessionFixture) loginWithRemote(t *testing.T, remote models.UserDataSnapshot) {
	t.Helper()
	name := nameFor(testPass)

	f.cache.EXPECT().Get(gomock.Any(), name).Return("", false, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, remote), nil)
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))
	require.Equal(t, models.SessionReady, f.svc.View().State)
}

// ── Login ───────────────────────────────────────────────────────────────────

// TestSession_Login_NewUser covers the first login of a user with no blob
// anywhere: the remote read fails and the session is still usable.
func TestSession_Login_NewUser(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)

	f.cache.EXPECT().Get(gomock.Any(), name).Return("", false, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return("", errors.New("500"))

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))

	view := f.svc.View()
	assert.Equal(t, models.SessionReady, view.State)
	assert.Equal(t, testUser, view.Username)
	assert.Empty(t, view.Snapshot.Entries)
	assert.Equal(t, []string{app.MsgCloudReadFailure(false)}, messages(view))
	assert.Empty(t, view.Progress)
}

func TestSession_Login_EmptyUsername(t *testing.T) {
	f := newSessionFixture(t)

	assert.ErrorIs(t, f.svc.Login(context.Background(), "  ", testPass, true), ErrEmptyUsername)
	assert.Equal(t, models.SessionLoggedOut, f.svc.View().State)
}

// TestSession_Login_AdoptsRemote checks that the remote snapshot is taken
// over as-is and written to the local cache.
func TestSession_Login_AdoptsRemote(t *testing.T) {
	f := newSessionFixture(t)

	f.loginWithRemote(t, snapshotOf(100, entry("b", 20), entry("A", 10)))

	view := f.svc.View()
	assert.Equal(t, int64(100), view.Snapshot.Timestamp)
	assert.Equal(t, []string{"A", "b"}, ids(view.Snapshot.Entries))
	assert.Empty(t, view.Errors)
	assert.True(t, view.CacheLocally)
}

// TestSession_Login_NotCaching removes any cached blob and never writes one.
func TestSession_Login_NotCaching(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)

	f.cache.EXPECT().Remove(gomock.Any(), name).Return(nil)
	f.cache.EXPECT().Get(gomock.Any(), name).Return("", false, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(100, entry("a", 10))), nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, false))

	view := f.svc.View()
	assert.Equal(t, []string{"a"}, ids(view.Snapshot.Entries))
	assert.False(t, view.CacheLocally)
}

// TestSession_Login_LocalDecryptionFailure reports the bad local blob and
// still reads the cloud.
func TestSession_Login_LocalDecryptionFailure(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)

	f.cache.EXPECT().Get(gomock.Any(), name).Return(blobFor(t, "other", snapshotOf(5)), true, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(100, entry("a", 10))), nil)
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))

	view := f.svc.View()
	assert.Equal(t, []string{"a"}, ids(view.Snapshot.Entries))
	assert.Equal(t, []string{app.MsgDecryptionFailure(true)}, messages(view))
}

func TestSession_Login_RemoteDecryptionFailure(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)

	f.cache.EXPECT().Get(gomock.Any(), name).Return("", false, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return("garbage", nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))

	view := f.svc.View()
	assert.Equal(t, models.SessionReady, view.State)
	assert.Equal(t, []string{app.MsgDecryptionFailure(false)}, messages(view))
}

func TestSession_Login_UnsupportedSchema(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)
	bad := snapshotOf(100)
	bad.Schema = 2

	f.cache.EXPECT().Get(gomock.Any(), name).Return("", false, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, bad), nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))

	assert.Equal(t, []string{app.MsgUnsupportedSchema}, messages(f.svc.View()))
}

// TestSession_Login_SameTimestamp leaves everything untouched when local and
// remote carry the same snapshot timestamp.
func TestSession_Login_SameTimestamp(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)
	snapshot := snapshotOf(100, entry("a", 10))

	f.cache.EXPECT().Get(gomock.Any(), name).Return(blobFor(t, testPass, snapshot), true, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, snapshot), nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))

	view := f.svc.View()
	assert.Equal(t, []string{"a"}, ids(view.Snapshot.Entries))
	assert.Empty(t, view.Errors)
}

// TestSession_Login_UnchangedMergeFollowsRemoteTimestamp covers a remote
// snapshot with a different timestamp but the same entries: only the local
// timestamp moves and the cache is rewritten.
func TestSession_Login_UnchangedMergeFollowsRemoteTimestamp(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)

	f.cache.EXPECT().Get(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(100, entry("a", 10))), true, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(200, entry("a", 10))), nil)
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))

	view := f.svc.View()
	assert.Equal(t, int64(200), view.Snapshot.Timestamp)
	assert.Empty(t, view.Errors)
}

// TestSession_Login_MergesCloudChanges covers a cloud snapshot with an
// addition made after the local one: the merge is saved everywhere and an
// informational message is shown.
func TestSession_Login_MergesCloudChanges(t *testing.T) {
	f := newSessionFixture(t)
	name := nameFor(testPass)

	f.cache.EXPECT().Get(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(100, entry("a", 10))), true, nil)
	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(200, entry("a", 10), entry("b", 150))), nil)
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)
	f.remote.EXPECT().Write(gomock.Any(), name, "", gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Login(context.Background(), testUser, testPass, true))
	f.svc.Wait()

	view := f.svc.View()
	assert.Equal(t, models.SessionReady, view.State)
	assert.Equal(t, []string{"a", "b"}, ids(view.Snapshot.Entries))
	assert.Equal(t, testNow, view.Snapshot.Timestamp)
	assert.Equal(t, []string{app.MsgCloudChangesMerged}, messages(view))
}

func TestSession_LastLogin(t *testing.T) {
	f := newSessionFixture(t)

	f.settings.EXPECT().Get(gomock.Any(), "username").Return(testUser, true, nil)
	f.settings.EXPECT().Get(gomock.Any(), "cache").Return("true", true, nil)

	username, cacheLocally := f.svc.LastLogin(context.Background())
	assert.Equal(t, testUser, username)
	assert.True(t, cacheLocally)
}

// ── Mutations ───────────────────────────────────────────────────────────────

// TestSession_SaveEntry_Persists checks the local-then-remote write of a new
// entry and the trimmed, stamped entry itself.
func TestSession_SaveEntry_Persists(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))
	name := nameFor(testPass)

	var written string
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)
	f.remote.EXPECT().Write(gomock.Any(), name, "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, content string) error {
			written = content
			return nil
		})

	err := f.svc.SaveEntry(context.Background(), models.Entry{ID: "  Mail ", Password: "short", Notes: " note \n"}, "")
	require.NoError(t, err)
	f.svc.Wait()

	view := f.svc.View()
	require.Equal(t, []string{"a", "Mail"}, ids(view.Snapshot.Entries))
	saved := view.Snapshot.Entries[1]
	assert.Equal(t, "note", saved.Notes)
	assert.Equal(t, testNow, saved.Timestamp)
	assert.True(t, saved.Weak)
	assert.Equal(t, testNow, view.Snapshot.Timestamp)
	assert.Equal(t, models.SessionReady, view.State)

	decoded, err := plainCodec{}.Decode(written, crypto.EncryptionKey(testPass, testUniqueText))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Mail"}, ids(decoded.Entries))
}

func TestSession_SaveEntry_Invalid(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100))

	err := f.svc.SaveEntry(context.Background(), models.Entry{ID: "   ", Password: "x"}, "")
	assert.ErrorIs(t, err, ErrInvalidEntry)

	err = f.svc.SaveEntry(context.Background(), models.Entry{ID: "id"}, "")
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestSession_SaveEntry_NotLoggedIn(t *testing.T) {
	f := newSessionFixture(t)

	err := f.svc.SaveEntry(context.Background(), models.Entry{ID: "id", Password: "x"}, "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// TestSession_SaveEntry_ReplacesEdited covers editing an entry under a new
// id (the old one goes away) and updating one whose id differs only in case.
func TestSession_SaveEntry_ReplacesEdited(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10), entry("b", 20)))
	name := nameFor(testPass)

	// Saves queued behind each other collapse into one write.
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil).MinTimes(1).MaxTimes(2)
	f.remote.EXPECT().Write(gomock.Any(), name, "", gomock.Any()).Return(nil).MinTimes(1).MaxTimes(2)

	require.NoError(t, f.svc.SaveEntry(context.Background(), entry("c", 0), "a"))
	require.NoError(t, f.svc.SaveEntry(context.Background(), entry("B", 0), "b"))
	f.svc.Wait()

	view := f.svc.View()
	assert.Equal(t, []string{"B", "c"}, ids(view.Snapshot.Entries))
	assert.Equal(t, testNow+1, view.Snapshot.Timestamp, "snapshot timestamps keep increasing")
}

func TestSession_DeleteEntry(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10), entry("b", 20)))
	name := nameFor(testPass)

	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)
	f.remote.EXPECT().Write(gomock.Any(), name, "", gomock.Any()).Return(nil)

	require.NoError(t, f.svc.DeleteEntry(context.Background(), "A"))
	assert.ErrorIs(t, f.svc.DeleteEntry(context.Background(), "zzz"), ErrEntryNotFound)
	f.svc.Wait()

	assert.Equal(t, []string{"b"}, ids(f.svc.View().Snapshot.Entries))
}

// TestSession_SaveFailure reports the failed cloud save and keeps the
// local state.
func TestSession_SaveFailure(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100))
	name := nameFor(testPass)

	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)
	f.remote.EXPECT().Write(gomock.Any(), name, "", gomock.Any()).Return(errors.New("offline"))

	require.NoError(t, f.svc.SaveEntry(context.Background(), entry("a", 0), ""))
	f.svc.Wait()

	view := f.svc.View()
	assert.Equal(t, []string{"a"}, ids(view.Snapshot.Entries))
	assert.Equal(t, []string{app.MsgCloudSaveFailure(true)}, messages(view))
	assert.Equal(t, models.SessionReady, view.State)
}

// ── Master password ─────────────────────────────────────────────────────────

// TestSession_ChangeMasterPassword_Success checks the rename write and the
// cleanup of the old remote blob.
func TestSession_ChangeMasterPassword_Success(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))
	oldName, newName := nameFor(testPass), nameFor("new pass")

	gomock.InOrder(
		f.cache.EXPECT().Remove(gomock.Any(), oldName).Return(nil),
		f.cache.EXPECT().Put(gomock.Any(), newName, gomock.Any()).Return(nil),
		f.remote.EXPECT().Write(gomock.Any(), newName, oldName, gomock.Any()).Return(nil),
		f.remote.EXPECT().Delete(gomock.Any(), oldName).Return(errors.New("ignored")),
	)

	require.NoError(t, f.svc.ChangeMasterPassword(context.Background(), "new pass"))
	f.svc.Wait()

	assert.Equal(t, "new pass", f.svc.passphrase)
	assert.Empty(t, f.svc.View().Errors)
}

// TestSession_ChangeMasterPassword_Failure restores the old passphrase and
// re-caches the snapshot under the old name.
func TestSession_ChangeMasterPassword_Failure(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))
	oldName, newName := nameFor(testPass), nameFor("new pass")

	gomock.InOrder(
		f.cache.EXPECT().Remove(gomock.Any(), oldName).Return(nil),
		f.cache.EXPECT().Put(gomock.Any(), newName, gomock.Any()).Return(nil),
		f.remote.EXPECT().Write(gomock.Any(), newName, oldName, gomock.Any()).Return(errors.New("offline")),
		f.cache.EXPECT().Remove(gomock.Any(), newName).Return(nil),
		f.cache.EXPECT().Put(gomock.Any(), oldName, gomock.Any()).Return(nil),
	)

	require.NoError(t, f.svc.ChangeMasterPassword(context.Background(), "new pass"))
	f.svc.Wait()

	assert.Equal(t, testPass, f.svc.passphrase)
	assert.Equal(t, []string{app.MsgMasterPasswordUpdateFailed, app.MsgCloudSaveFailure(true)}, messages(f.svc.View()))
}

func TestSession_ChangeMasterPassword_Rejected(t *testing.T) {
	f := newSessionFixture(t)

	assert.ErrorIs(t, f.svc.ChangeMasterPassword(context.Background(), "new"), ErrNotLoggedIn)
	assert.ErrorIs(t, f.svc.ChangeMasterPassword(context.Background(), ""), ErrEmptyMasterPassword)
}

// cloudStub accepts a write to a missing blob only as a rename of an
// existing one, the way a server refusing new blobs does.
type cloudStub struct {
	mu     sync.Mutex
	blobs  map[string]string
	refuse string
}

func (c *cloudStub) write(_ context.Context, name, previousName, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name == c.refuse {
		return errors.New("offline")
	}
	if _, ok := c.blobs[name]; !ok {
		if _, ok := c.blobs[previousName]; previousName == "" || !ok {
			return errors.New("blob not found")
		}
	}
	c.blobs[name] = content
	return nil
}

func (c *cloudStub) delete(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.blobs, name)
	return nil
}

func (c *cloudStub) entries(t *testing.T, passphrase string) []string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	blob, ok := c.blobs[nameFor(passphrase)]
	require.True(t, ok)
	decoded, err := plainCodec{}.Decode(blob, crypto.EncryptionKey(passphrase, testUniqueText))
	require.NoError(t, err)
	return ids(decoded.Entries)
}

// TestSession_ChangeMasterPassword_ThenSave saves an entry right after a
// password change: the rename reaches the cloud first and the newest entry
// ends up in the renamed blob.
func TestSession_ChangeMasterPassword_ThenSave(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := newSessionFixture(t)
		f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))
		oldName, newName := nameFor(testPass), nameFor("new pass")
		cloud := &cloudStub{blobs: map[string]string{oldName: "old"}}

		f.cache.EXPECT().Remove(gomock.Any(), oldName).Return(nil)
		f.cache.EXPECT().Put(gomock.Any(), newName, gomock.Any()).Return(nil).MinTimes(1).MaxTimes(2)
		f.remote.EXPECT().Write(gomock.Any(), newName, gomock.Any(), gomock.Any()).DoAndReturn(cloud.write).MinTimes(1).MaxTimes(2)
		f.remote.EXPECT().Delete(gomock.Any(), oldName).DoAndReturn(cloud.delete)

		require.NoError(t, f.svc.ChangeMasterPassword(context.Background(), "new pass"))
		require.NoError(t, f.svc.SaveEntry(context.Background(), entry("b", 0), ""))
		f.svc.Wait()

		assert.Empty(t, f.svc.View().Errors)
		assert.Equal(t, []string{"a", "b"}, cloud.entries(t, "new pass"))
		assert.NotContains(t, cloud.blobs, oldName)
	}
}

// TestSession_ChangeMasterPassword_FailureKeepsLaterSave covers a rename the
// cloud rejects while a save is queued behind it: the old passphrase comes
// back and the saved entry is written under the old name.
func TestSession_ChangeMasterPassword_FailureKeepsLaterSave(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := newSessionFixture(t)
		f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))
		oldName, newName := nameFor(testPass), nameFor("new pass")
		cloud := &cloudStub{blobs: map[string]string{oldName: blobFor(t, testPass, snapshotOf(100, entry("a", 10)))}, refuse: newName}

		f.cache.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.remote.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(cloud.write).MinTimes(2)

		require.NoError(t, f.svc.ChangeMasterPassword(context.Background(), "new pass"))
		require.NoError(t, f.svc.SaveEntry(context.Background(), entry("b", 0), ""))
		f.svc.Wait()

		assert.Equal(t, testPass, f.svc.passphrase)
		assert.Contains(t, messages(f.svc.View()), app.MsgMasterPasswordUpdateFailed)
		assert.Equal(t, []string{"a", "b"}, cloud.entries(t, testPass))
		assert.NotContains(t, cloud.blobs, newName)
	}
}

// ── Session state ───────────────────────────────────────────────────────────

func TestSession_Logout(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))

	f.svc.Logout()

	view := f.svc.View()
	assert.Equal(t, models.SessionLoggedOut, view.State)
	assert.Empty(t, view.Snapshot.Entries)
	assert.Empty(t, f.svc.passphrase)
	assert.ErrorIs(t, f.svc.Refresh(context.Background()), ErrNotLoggedIn)
}

// TestSession_Logout_StopsQueuingSaves checks that nothing is queued for the
// cloud once the session has logged out, so Wait cannot race a new save.
func TestSession_Logout_StopsQueuingSaves(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10)))
	gen := f.svc.generation

	f.svc.Logout()
	f.svc.persist(context.Background(), gen)
	f.svc.Wait()

	assert.ErrorIs(t, f.svc.SaveEntry(context.Background(), entry("b", 0), ""), ErrNotLoggedIn)
	assert.Empty(t, f.svc.writes)
	assert.Zero(t, f.svc.pending)
}

// TestSession_Refresh_MergesRemote checks that a later remote snapshot with
// a deletion removes the entry locally.
func TestSession_Refresh_MergesRemote(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("a", 10), entry("b", 20)))
	name := nameFor(testPass)

	f.remote.EXPECT().Read(gomock.Any(), name).Return(blobFor(t, testPass, snapshotOf(300, entry("b", 20))), nil)
	f.cache.EXPECT().Put(gomock.Any(), name, gomock.Any()).Return(nil)
	f.remote.EXPECT().Write(gomock.Any(), name, "", gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Refresh(context.Background()))
	f.svc.Wait()

	assert.Equal(t, []string{"b"}, ids(f.svc.View().Snapshot.Entries))
}

func TestSession_DismissError(t *testing.T) {
	f := newSessionFixture(t)
	f.svc.generation = 1
	f.svc.reportError(1, "first")
	f.svc.reportError(1, "second")

	view := f.svc.View()
	require.Len(t, view.Errors, 2)
	assert.Equal(t, "second", view.Errors[0].Message)
	assert.Greater(t, view.Errors[0].ID, view.Errors[1].ID)

	f.svc.DismissError(view.Errors[1].ID)
	f.svc.DismissError(12345)

	assert.Equal(t, []string{"second"}, messages(f.svc.View()))
}

func TestSession_Subscribe(t *testing.T) {
	f := newSessionFixture(t)
	f.svc.generation = 1

	var (
		mu     sync.Mutex
		events []models.SessionEventKind
	)
	unsubscribe := f.svc.Subscribe(func(e models.SessionEvent) {
		mu.Lock()
		events = append(events, e.Kind)
		mu.Unlock()
	})

	f.svc.reportError(1, "boom")
	unsubscribe()
	f.svc.reportError(1, "ignored")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.SessionEventKind{models.EventErrorsChanged}, events)
}

func TestSession_Filter(t *testing.T) {
	f := newSessionFixture(t)
	f.loginWithRemote(t, snapshotOf(100, entry("Mail", 10), entry("bank", 20)))

	assert.Equal(t, []string{"Mail"}, ids(f.svc.Filter("mai")))
	assert.Equal(t, []string{"bank"}, ids(f.svc.Filter("BANK-U")))
	assert.Len(t, f.svc.Filter(""), 2)
}

func TestSession_Touch(t *testing.T) {
	f := newSessionFixture(t)
	f.svc.now = func() time.Time { return time.UnixMilli(testNow + 5000) }

	f.svc.Touch()

	assert.Equal(t, time.UnixMilli(testNow+5000), f.svc.LastActivity())
}
