package merge

import (
	"slices"

	"github.com/MKhiriev/go-pass-web/models"
)

// Outcome describes how an incoming snapshot was reconciled.
type Outcome int

const (
	// OutcomeNoop means both snapshots carry the same timestamp and nothing
	// has to be persisted.
	OutcomeNoop Outcome = iota
	// OutcomeAdopted means the local side was empty and the incoming
	// snapshot was taken over as-is.
	OutcomeAdopted
	// OutcomeUnchanged means a full merge ran but produced the local entries
	// again; only the local timestamp has to follow the incoming one.
	OutcomeUnchanged
	// OutcomeMerged means the merged entries differ from at least one side
	// and must be written back to local and remote storage.
	OutcomeMerged
)

// Result is the output of [Merge].
type Result struct {
	Entries []models.Entry
	Changed bool
	Outcome Outcome
}

// sentinel stands in for an exhausted list. Its empty id sorts before every
// real id and its zero timestamp is never newer than a snapshot.
var sentinel = models.Entry{}

// Merge reconciles the session's local snapshot with an incoming one.
//
// Both entry lists are walked from the highest folded id downwards. Entries
// present on both sides keep the newer version. An entry present on one side
// only is kept when it is newer than the other side's snapshot timestamp and
// dropped otherwise. Every such decision, and every pair whose timestamps
// differ, marks the result as changed.
//
// Entries of the incoming snapshot are normalized first (sorted, deduplicated
// by folded id, Weak recomputed). The local snapshot is expected to be
// normalized already.
func Merge(local, incoming models.UserDataSnapshot) Result {
	if local.Timestamp == incoming.Timestamp {
		return Result{Entries: local.Entries, Outcome: OutcomeNoop}
	}

	incomingEntries := Normalize(incoming.Entries)
	if local.Timestamp == 0 {
		return Result{Entries: incomingEntries, Outcome: OutcomeAdopted}
	}

	localEntries := local.Entries
	merged := make([]models.Entry, 0, max(len(localEntries), len(incomingEntries)))
	changed := false

	li, ii := len(localEntries)-1, len(incomingEntries)-1
	next := func(entries []models.Entry, i int) models.Entry {
		if i < 0 {
			return sentinel
		}
		return entries[i]
	}

	for li >= 0 || ii >= 0 {
		l := next(localEntries, li)
		in := next(incomingEntries, ii)

		cmp := compareOrSentinel(l, li < 0, in, ii < 0)
		if cmp == 0 {
			switch {
			case l.Timestamp == in.Timestamp:
				merged = append(merged, l)
			case l.Timestamp < in.Timestamp:
				merged = append(merged, in)
				changed = true
			default:
				merged = append(merged, l)
				changed = true
			}
			li--
			ii--
			continue
		}

		var (
			unique             models.Entry
			otherListTimestamp int64
		)
		if cmp < 0 {
			unique = in
			otherListTimestamp = local.Timestamp
			ii--
		} else {
			unique = l
			otherListTimestamp = incoming.Timestamp
			li--
		}

		if otherListTimestamp < unique.Timestamp {
			merged = append(merged, unique)
		}
		changed = true
	}

	slices.Reverse(merged)

	if !changed {
		return Result{Entries: localEntries, Outcome: OutcomeUnchanged}
	}
	return Result{Entries: merged, Changed: true, Outcome: OutcomeMerged}
}

// compareOrSentinel compares two list heads where an exhausted list is
// represented by the sentinel, which sorts below every real entry.
func compareOrSentinel(l models.Entry, lDone bool, in models.Entry, inDone bool) int {
	switch {
	case lDone && inDone:
		return 0
	case lDone:
		return -1
	case inDone:
		return 1
	default:
		return Compare(l, in)
	}
}
