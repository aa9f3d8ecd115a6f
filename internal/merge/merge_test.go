package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-web/models"
)

func entry(id string, ts int64) models.Entry {
	return models.Entry{
		ID:        id,
		Username:  "user-" + id,
		Password:  "p@ssw0rd-" + id,
		Website:   "https://" + id + ".example",
		Notes:     "",
		Timestamp: ts,
	}
}

func snapshot(ts int64, entries ...models.Entry) models.UserDataSnapshot {
	return models.UserDataSnapshot{
		Schema:    models.SchemaVersion,
		Timestamp: ts,
		Entries:   Normalize(entries),
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

// ── Short-circuits ──────────────────────────────────────────────────────────

// TestMerge_SameTimestampIsNoop checks that snapshots sharing a timestamp are
// never walked, whatever their entries.
func TestMerge_SameTimestampIsNoop(t *testing.T) {
	local := snapshot(100, entry("a", 100))
	incoming := snapshot(100, entry("b", 50))

	res := Merge(local, incoming)

	assert.Equal(t, OutcomeNoop, res.Outcome)
	assert.False(t, res.Changed)
	assert.Equal(t, []string{"a"}, ids(res.Entries))
}

// TestMerge_IdempotentOnItself checks merge(S, S) for several shapes of S.
func TestMerge_IdempotentOnItself(t *testing.T) {
	cases := []models.UserDataSnapshot{
		snapshot(0),
		snapshot(10),
		snapshot(300, entry("a", 100), entry("B", 200), entry("c", 300)),
	}

	for _, s := range cases {
		res := Merge(s, s)
		assert.False(t, res.Changed)
		assert.Equal(t, s.Entries, res.Entries)
	}
}

// TestMerge_AdoptsIntoEmptyLocal checks that an uninitialized local snapshot
// takes the incoming entries without marking a change.
func TestMerge_AdoptsIntoEmptyLocal(t *testing.T) {
	local := models.NewUserDataSnapshot()
	incoming := snapshot(500, entry("b", 400), entry("a", 300))

	res := Merge(local, incoming)

	assert.Equal(t, OutcomeAdopted, res.Outcome)
	assert.False(t, res.Changed)
	assert.Equal(t, []string{"a", "b"}, ids(res.Entries))
}

// ── Two-pointer walk ────────────────────────────────────────────────────────

// TestMerge_RemoteAdditionIsIncluded covers an entry created remotely after
// the local side last synchronized.
func TestMerge_RemoteAdditionIsIncluded(t *testing.T) {
	local := snapshot(100, entry("a", 100))
	remote := snapshot(150, entry("a", 100), entry("b", 150))

	res := Merge(local, remote)

	assert.Equal(t, OutcomeMerged, res.Outcome)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"a", "b"}, ids(res.Entries))
	assert.Equal(t, int64(150), res.Entries[1].Timestamp)
}

// TestMerge_RemoteDeletionIsHonoured covers tombstone-by-omission: the local
// entry is older than the remote snapshot, so its absence there is a delete.
func TestMerge_RemoteDeletionIsHonoured(t *testing.T) {
	local := snapshot(200, entry("a", 100), entry("b", 90))
	remote := snapshot(90, entry("a", 100))

	res := Merge(local, remote)

	assert.True(t, res.Changed)
	assert.Equal(t, []string{"a"}, ids(res.Entries))
}

// TestMerge_LocalAdditionSurvivesOlderRemote keeps an entry that was added
// locally after the remote snapshot was written.
func TestMerge_LocalAdditionSurvivesOlderRemote(t *testing.T) {
	local := snapshot(400, entry("a", 100), entry("z", 350))
	remote := snapshot(300, entry("a", 100))

	res := Merge(local, remote)

	assert.True(t, res.Changed)
	assert.Equal(t, []string{"a", "z"}, ids(res.Entries))
}

// TestMerge_IncomingDeletedLocally drops an incoming entry that the local side
// removed after the entry was last edited.
func TestMerge_IncomingDeletedLocally(t *testing.T) {
	local := snapshot(500, entry("b", 100))
	remote := snapshot(200, entry("a", 150), entry("b", 100))

	res := Merge(local, remote)

	assert.True(t, res.Changed)
	assert.Equal(t, []string{"b"}, ids(res.Entries))
}

// TestMerge_NewerVersionWins checks both directions of an update conflict.
func TestMerge_NewerVersionWins(t *testing.T) {
	olderA := entry("a", 100)
	newerA := entry("a", 250)
	newerA.Password = "n3w-secret!"

	t.Run("incoming newer", func(t *testing.T) {
		res := Merge(snapshot(200, olderA), snapshot(300, newerA))
		require.Len(t, res.Entries, 1)
		assert.True(t, res.Changed)
		assert.Equal(t, "n3w-secret!", res.Entries[0].Password)
	})

	t.Run("local newer", func(t *testing.T) {
		res := Merge(snapshot(300, newerA), snapshot(200, olderA))
		require.Len(t, res.Entries, 1)
		assert.True(t, res.Changed)
		assert.Equal(t, "n3w-secret!", res.Entries[0].Password)
	})
}

// TestMerge_EqualEntriesDifferentSnapshotTimes reports no change when only
// the snapshot timestamps differ.
func TestMerge_EqualEntriesDifferentSnapshotTimes(t *testing.T) {
	local := snapshot(100, entry("a", 50), entry("b", 60))
	remote := snapshot(200, entry("A", 50), entry("b", 60))

	res := Merge(local, remote)

	assert.Equal(t, OutcomeUnchanged, res.Outcome)
	assert.False(t, res.Changed)
	assert.Equal(t, local.Entries, res.Entries)
}

// TestMerge_CaseInsensitiveIdentity treats ids differing only in case as the
// same record.
func TestMerge_CaseInsensitiveIdentity(t *testing.T) {
	local := snapshot(100, entry("Mail", 100))
	remote := snapshot(300, entry("mail", 300))

	res := Merge(local, remote)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "mail", res.Entries[0].ID)
	assert.Equal(t, int64(300), res.Entries[0].Timestamp)
}

// TestMerge_EmptySides exercises the sentinel handling when one list is empty.
func TestMerge_EmptySides(t *testing.T) {
	t.Run("empty incoming newer", func(t *testing.T) {
		res := Merge(snapshot(100, entry("a", 50)), snapshot(200))
		assert.True(t, res.Changed)
		assert.Empty(t, res.Entries)
	})

	t.Run("empty local newer", func(t *testing.T) {
		res := Merge(snapshot(300), snapshot(200, entry("a", 50)))
		assert.True(t, res.Changed)
		assert.Empty(t, res.Entries)
	})

	t.Run("both empty", func(t *testing.T) {
		res := Merge(snapshot(300), snapshot(200))
		assert.False(t, res.Changed)
		assert.Empty(t, res.Entries)
	})
}

// TestMerge_ResultIsAscending checks that the reversed accumulation restores
// ascending folded-id order.
func TestMerge_ResultIsAscending(t *testing.T) {
	local := snapshot(100, entry("delta", 90), entry("alpha", 10), entry("Charlie", 20))
	remote := snapshot(200, entry("bravo", 150), entry("echo", 180), entry("alpha", 10))

	res := Merge(local, remote)

	assert.Equal(t, []string{"alpha", "bravo", "echo"}, ids(res.Entries))
}

// TestMerge_ConvergesOncePropagated merges both ways and checks that the
// persisted result causes no further change on the other side.
func TestMerge_ConvergesOncePropagated(t *testing.T) {
	a := snapshot(100, entry("a", 100), entry("c", 80))
	b := snapshot(150, entry("a", 100), entry("b", 150), entry("c", 80))

	first := Merge(a, b)
	require.True(t, first.Changed)

	persisted := models.UserDataSnapshot{Schema: models.SchemaVersion, Timestamp: 400, Entries: first.Entries}

	second := Merge(b, persisted)
	assert.False(t, second.Changed)
	assert.Equal(t, ids(b.Entries), ids(second.Entries))

	third := Merge(persisted, persisted)
	assert.Equal(t, OutcomeNoop, third.Outcome)
}
