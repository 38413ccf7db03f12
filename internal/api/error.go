package api

// HTTPError carries the status and client-safe message for a failed request.
// ErrorLog holds the underlying error for the access log only and is never
// written to the response body.
type HTTPError struct {
	StatusCode int
	Message    string
	ErrorLog   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.ErrorLog
}

// ApiError is the JSON error body sent to clients.
type ApiError struct {
	Error string `json:"message"`
}
