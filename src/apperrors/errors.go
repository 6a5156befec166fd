package apperrors

import "errors"

// Error kinds shared by the store, services, agents and controllers.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrValidationFailed    = errors.New("validation failed")
	ErrBadRequest          = errors.New("bad request")
	ErrConflict            = errors.New("conflict")
)

// AppError carries a kind (Err) plus a human readable message and details.
type AppError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidationFailed, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Err: ErrBadRequest, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

// Upstream wraps a store or generation-service failure.
func Upstream(cause error, message string) *AppError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &AppError{Err: errors.Join(ErrUpstreamUnavailable, cause), Message: message}
}

// KindOf returns the sentinel kind of err, ErrUpstreamUnavailable for
// anything unclassified.
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrValidationFailed, ErrBadRequest, ErrConflict, ErrUpstreamUnavailable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrUpstreamUnavailable
}
