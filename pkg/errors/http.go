package errors

// HTTPError carries an HTTP status code alongside a user-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}
