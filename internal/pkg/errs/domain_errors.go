package errs

import "errors"

// Error kinds shared by the domain and usecase layers. Handlers map them to HTTP statuses.
var (
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrReturnProcessing  = errors.New("return processing failed")
	ErrForbidden         = errors.New("forbidden")
)

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) Is(target error) bool { return target == e.kind }

// Kindf creates a new error classified as kind. The kind is visible to errors.Is.
func Kindf(kind error, format string, args ...any) error {
	return &kindError{kind: kind, err: newf(format, args...)}
}

// WithKind classifies an existing error without changing its message.
func WithKind(err error, kind error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

func Validationf(format string, args ...any) error {
	return Kindf(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return Kindf(ErrNotFound, format, args...)
}

func Conflictf(format string, args ...any) error {
	return Kindf(ErrConflict, format, args...)
}

func InvalidStatef(format string, args ...any) error {
	return Kindf(ErrInvalidState, format, args...)
}

func Forbiddenf(format string, args ...any) error {
	return Kindf(ErrForbidden, format, args...)
}
