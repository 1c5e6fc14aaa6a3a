package engine

import "errors"

// The engine reports failures as one of four error kinds so callers can
// branch on the kind rather than on message text. Messages are stable and
// user-facing; the hosting layer forwards them as-is.

// ConflictError reports a uniqueness violation, currently only a duplicate
// user email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports that a referenced id does not exist, or that a
// create precondition on a related record failed.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IntegrityError reports a broken invariant: a foreign key that no longer
// resolves. It cannot occur unless the store was mutated around the engine,
// so callers should treat it as fatal rather than as bad input.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string { return e.Message }

// ValidationError reports malformed create input (missing required field,
// malformed email). It is raised before any precondition check.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsIntegrity reports whether err is an IntegrityError.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
