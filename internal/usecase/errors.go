package usecase

import "errors"

// Domain error taxonomy. Handlers translate these into HTTP status codes;
// everything else surfaces as an internal error with a generic message.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden marks an actor whose role does not permit the operation.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound marks a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRegistered is reported when a register call finds the
	// (user, event) pair already present. The operation is idempotent in
	// effect but the conflict is still signaled to the caller.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrNotRegistered is reported when an unregister call finds no such
	// (user, event) pair.
	ErrNotRegistered = errors.New("not registered for this event")
	// ErrConflict marks a unique-constraint violation on login or email.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials marks a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrInternal masks unexpected storage or infrastructure failures.
	ErrInternal = errors.New("internal server error")
)
