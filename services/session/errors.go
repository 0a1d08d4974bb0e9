package session

// Code classifies an authentication failure for the caller.
type Code string

const (
	// CodeValidation is a caller-correctable input problem.
	CodeValidation Code = "validation"
	// CodeDuplicateAccount means an account with that email already exists.
	CodeDuplicateAccount Code = "duplicate_account"
	// CodeInvalidCredentials means the password did not match.
	CodeInvalidCredentials Code = "invalid_credentials"
	// CodeNotFound means no account matches the given email.
	CodeNotFound Code = "not_found"
	// CodeProvider wraps any other identity-provider failure.
	CodeProvider Code = "provider"
)

// AuthError is the caller-facing authentication failure. Raw provider errors
// never cross the store boundary; they are converted here with a
// human-readable message.
type AuthError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func newAuthError(code Code, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}
