package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/merge"
	"github.com/MKhiriev/go-pass-web/models"
)

const (
	FieldEntryID        = "id"
	FieldEntryPassword  = "password"
	FieldEntryTimestamp = "timestamp"
	FieldEntries        = "entries"
)

// EntryValidator checks entries coming from the entry form and snapshots
// about to be persisted.
type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate accepts models.Entry and models.UserDataSnapshot (or pointers to
// them).
//
// Default entry fields: id, password. Default snapshot fields: entries,
// which checks every entry and rejects folded-id duplicates.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)
	case models.UserDataSnapshot:
		return v.validateSnapshot(value, fields...)
	case *models.UserDataSnapshot:
		return v.validateSnapshot(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldEntryPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrEmptyEntryID
			}
		case FieldEntryPassword:
			if entry.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEntryTimestamp:
			if entry.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateSnapshot(snapshot models.UserDataSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			seen := make(map[string]struct{}, len(snapshot.Entries))
			for i, e := range snapshot.Entries {
				if err := v.validateEntry(e, FieldEntryID); err != nil {
					return fmt.Errorf("entry %d: %w", i, err)
				}
				id := merge.FoldID(e.ID)
				if _, dup := seen[id]; dup {
					return fmt.Errorf("entry %d (%s): %w", i, e.ID, ErrDuplicateEntryID)
				}
				seen[id] = struct{}{}
			}
		case FieldEntryTimestamp:
			if snapshot.Timestamp < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
