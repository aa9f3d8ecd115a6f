package models

import "fmt"

const buildInfoUnset = "N/A"

// BuildInfo identifies a binary. The fields are injected with -ldflags at
// release time and stay empty in development builds.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{Version: version, Date: date, Commit: commit}
}

// Fields returns the version, date and commit with N/A for unset values.
func (b BuildInfo) Fields() (version, date, commit string) {
	return orUnset(b.Version), orUnset(b.Date), orUnset(b.Commit)
}

func (b BuildInfo) String() string {
	version, date, commit := b.Fields()
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func orUnset(v string) string {
	if v == "" {
		return buildInfoUnset
	}
	return v
}
