package location

import "fmt"

type ErrorCode string

const (
	CodePermissionDenied ErrorCode = "permission_denied"
	CodeTimeout          ErrorCode = "timeout"
	CodeGeocode          ErrorCode = "geocode_error"
)

// Error carries a stable code so handlers can map location failures
// to the right HTTP status.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// ErrPermissionDenied is returned by position sources when the user
// refused location access.
var ErrPermissionDenied = &Error{Code: CodePermissionDenied, Message: "location permission denied"}

func errTimeout(err error) *Error {
	return &Error{Code: CodeTimeout, Message: "timed out waiting for a location fix", Err: err}
}

func errGeocode(err error) *Error {
	return &Error{Code: CodeGeocode, Message: "failed to resolve address from coordinates", Err: err}
}
