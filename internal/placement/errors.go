package placement

import "errors"

// Recoverable failure conditions. Every operation that can fail returns one
// of these and leaves the session and history exactly as they were; callers
// compare with errors.Is.
var (
	// ErrNoActiveTemplate: commit or rotate attempted while the session is Idle.
	ErrNoActiveTemplate = errors.New("placement: no active template")
	// ErrPlacementBlocked: commit attempted while the last computed validity
	// was false, or before any frame has produced a pose at all.
	ErrPlacementBlocked = errors.New("placement: blocked")
	// ErrEmptyHistory: undo with nothing to undo.
	ErrEmptyHistory = errors.New("placement: history is empty")
)
