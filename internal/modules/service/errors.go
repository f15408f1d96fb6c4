package service

import (
	"errors"
	"fmt"

	"github.com/atriumstudio/atrium/internal/modules/repo"
)

// Error kinds shared across services. Handlers translate these with errors.Is;
// none of them is fatal to the process.
var (
	// ErrNotFound: the addressed entity does not exist in the backing store.
	ErrNotFound = errors.New("not found")

	// ErrValidation: a required field is missing or holds a disallowed value.
	// Surfaced inline, recoverable, never logged as exceptional.
	ErrValidation = errors.New("validation failed")

	// ErrStore: the backing store is unreachable or failed mid-operation.
	// Retryable by re-invoking the same call; no automatic retry is performed.
	ErrStore = errors.New("store unavailable")

	// ErrConflict: a uniqueness rule was violated (e.g. duplicate tag pair).
	ErrConflict = errors.New("conflict")

	// ErrImageRead: reading an uploaded file failed mid-transfer. The draft
	// keeps its previous image reference.
	ErrImageRead = errors.New("failed to read image file")

	// Edit-session errors.
	ErrSessionNotFound = errors.New("edit session not found")
	ErrSessionBusy     = errors.New("edit session has an operation in flight")
	ErrSessionClosed   = errors.New("edit session is closed")
)

// storeErr maps store-layer failures onto the shared kinds so callers only
// ever match against the sentinels above.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrDuplicate):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
}
