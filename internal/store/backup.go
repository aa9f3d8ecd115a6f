package store

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// backupTagLayout plus seven digits of 100ns ticks gives 21 digits.
	backupTagLayout  = "20060102150405"
	backupTagTick    = 100 * time.Nanosecond
	maxBackupAttempt = 10_000
)

var backupNamePattern = regexp.MustCompile(`\.\d{21}$`)

// IsBackupName reports whether name carries a backup suffix.
func IsBackupName(name string) bool {
	return backupNamePattern.MatchString(name)
}

// backupTag formats t as yyyyMMddHHmmss followed by the 100ns fraction.
func backupTag(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s%07d", t.Format(backupTagLayout), t.Nanosecond()/int(backupTagTick))
}

// backupName returns "<name>.<tag>".
func backupName(name string, t time.Time) string {
	return name + "." + backupTag(t)
}

// freeBackupName returns the first backup name at or after modTime, in 100ns
// steps, for which taken reports false. Existing backups are never reused.
func freeBackupName(name string, modTime time.Time, taken func(string) (bool, error)) (string, error) {
	t := modTime.UTC().Truncate(backupTagTick)
	for range maxBackupAttempt {
		candidate := backupName(name, t)
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		t = t.Add(backupTagTick)
	}
	return "", fmt.Errorf("%w: %s", ErrNoFreeBackupName, name)
}

// resolveName joins name onto root and accepts it only when the cleaned
// location's parent is exactly the cleaned root and the last element is
// name itself. Separators of either flavour, NUL bytes and dot segments are
// therefore rejected regardless of how they are spelled.
func resolveName(root, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	cleanRoot := filepath.Clean(root)
	location := filepath.Join(cleanRoot, name)
	if filepath.Dir(location) != cleanRoot || filepath.Base(location) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return location, nil
}

// resolveTarget is resolveName for names that are written or deleted:
// backups are never a write target.
func resolveTarget(root, name string) (string, error) {
	location, err := resolveName(root, name)
	if err != nil {
		return "", err
	}
	if IsBackupName(name) {
		return "", fmt.Errorf("%w: %q addresses a backup", ErrInvalidName, name)
	}
	return location, nil
}

// virtualRoot is the root used to validate names of storages that have no
// directory structure of their own (bbolt buckets, tables).
const virtualRoot = "/blobs"
