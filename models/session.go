package models

// SessionState is the state of the client synchronization session.
type SessionState int

const (
	SessionLoggedOut SessionState = iota
	SessionLoadingLocal
	SessionLoadingRemote
	SessionReady
	SessionSaving
)

func (s SessionState) String() string {
	switch s {
	case SessionLoggedOut:
		return "logged out"
	case SessionLoadingLocal:
		return "loading local"
	case SessionLoadingRemote:
		return "loading remote"
	case SessionReady:
		return "ready"
	case SessionSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// StatusError is one dismissible message in the status error list.
type StatusError struct {
	ID      int
	Message string
}

// SessionView is an immutable copy of the session state handed to the UI.
type SessionView struct {
	State        SessionState
	Username     string
	CacheLocally bool
	Snapshot     UserDataSnapshot
	Errors       []StatusError
	Progress     string
	Pending      int
}

// SessionEventKind tells subscribers what changed.
type SessionEventKind int

const (
	EventStateChanged SessionEventKind = iota
	EventEntriesChanged
	EventErrorsChanged
	EventProgressChanged
	EventLoggedOut
)

// SessionEvent is emitted by the session service after every state update.
type SessionEvent struct {
	Kind SessionEventKind
	View SessionView
}
