package booking

// ErrorCode classifies a booking operation failure.
type ErrorCode string

const (
	// CodeNotLoggedIn means no identity is active.
	CodeNotLoggedIn ErrorCode = "not_logged_in"
	// CodeProvider wraps any remote-store failure.
	CodeProvider ErrorCode = "provider"
)

// Error is the caller-facing booking failure. Remote-store errors never cross
// the service boundary raw; they are converted here with a human-readable
// message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errNotLoggedIn() *Error {
	return &Error{Code: CodeNotLoggedIn, Message: "you must be logged in to manage bookings"}
}

func errProvider(message string, err error) *Error {
	return &Error{Code: CodeProvider, Message: message, Err: err}
}
