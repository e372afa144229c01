package exchange

import "fmt"

const unknownSessionID = "UNKNOWN"

// State carries the per-request session identity shared between the host and frontends
type State struct {
	SessionID string
}

// NewState creates a new State for the given session
func NewState(sessionID string) *State {
	return &State{SessionID: sessionID}
}

// SessionID extracts the session identifier used for log correlation
func SessionID(state *State) string {
	if state == nil || state.SessionID == "" {
		return unknownSessionID
	}
	return state.SessionID
}

// LogLine formats a log message prefixed with the session identifier
func LogLine(sessionID string, msg string) string {
	return fmt.Sprintf("[%s] %s", sessionID, msg)
}
