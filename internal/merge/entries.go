package merge

import (
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-web/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers holds language-neutral upper casers. A cases.Caser keeps internal
// state and must not be shared between goroutines.
var casers = sync.Pool{
	New: func() any {
		c := cases.Upper(language.Und)
		return &c
	},
}

// FoldID returns the case-folded form of an entry id used for identity and
// ordering.
func FoldID(id string) string {
	c := casers.Get().(*cases.Caser)
	folded := c.String(id)
	casers.Put(c)
	return folded
}

// Compare orders two entries by case-folded id. It returns a negative
// number when a sorts before b, zero when both denote the same record and a
// positive number otherwise.
func Compare(a, b models.Entry) int {
	return strings.Compare(FoldID(a.ID), FoldID(b.ID))
}

// Sort orders entries ascending by case-folded id in place.
func Sort(entries []models.Entry) {
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := keys[e.ID]; !ok {
			keys[e.ID] = FoldID(e.ID)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return keys[entries[i].ID] < keys[entries[j].ID]
	})
}

// Normalize returns a sorted copy of entries in which every folded id occurs
// once and Weak is recomputed from the password. When two entries share a
// folded id the one with the greater timestamp wins; on a tie the later one
// in the input is kept.
func Normalize(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, len(entries))
	copy(out, entries)
	Sort(out)

	result := out[:0]
	for _, e := range out {
		e.Weak = IsWeakPassword(e.Password)
		if n := len(result); n > 0 && Compare(result[n-1], e) == 0 {
			if e.Timestamp >= result[n-1].Timestamp {
				result[n-1] = e
			}
			continue
		}
		result = append(result, e)
	}

	return result
}

// IndexOf returns the position of the entry with the given id (compared
// after case folding), or -1.
func IndexOf(entries []models.Entry, id string) int {
	folded := FoldID(id)
	for i, e := range entries {
		if FoldID(e.ID) == folded {
			return i
		}
	}
	return -1
}

// Filter returns the entries whose id or user name contains text, ignoring
// case. An empty text matches everything.
func Filter(entries []models.Entry, text string) []models.Entry {
	needle := FoldID(text)
	if needle == "" {
		return entries
	}

	visible := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(FoldID(e.ID), needle) || strings.Contains(FoldID(e.Username), needle) {
			visible = append(visible, e)
		}
	}
	return visible
}
