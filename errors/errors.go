package errors

import "fmt"

var (
	// ErrUnauthenticated covers every credential failure (missing, malformed,
	// expired, bad signature). Gateways disconnect the transport on it.
	ErrUnauthenticated = fmt.Errorf("unauthenticated")

	// ErrRegistryUnavailable is returned when the shared store cannot be
	// reached. Session-affecting callers fail the request; best-effort
	// callers log and continue.
	ErrRegistryUnavailable = fmt.Errorf("registry unavailable")

	ErrNotFound     = fmt.Errorf("not found")
	ErrCallNotFound = fmt.Errorf("call not found")
	ErrForbidden    = fmt.Errorf("forbidden")

	// ErrConflict is returned when a conditional write loses a race,
	// e.g. two parties answering and ending the same call at once.
	ErrConflict = fmt.Errorf("conflict")

	ErrConversationRequired = fmt.Errorf("conversation id is required")
	ErrEmptyMessage         = fmt.Errorf("message has no content and no attachments")
	ErrAttachmentTooLarge   = fmt.Errorf("attachment exceeds size limit")
	ErrEmptyWords           = fmt.Errorf("no censored words have been found")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)
