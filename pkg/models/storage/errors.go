package storage

// ErrorResponse is the body of a failed Storage management request.
type ErrorResponse struct {
	Error *ErrorResponseBody `json:"error,omitempty"`
}

type ErrorResponseBody struct {
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
}

// Err returns the response as a Go error, or nil when it carries none.
func (r *ErrorResponse) Err() error {
	if r == nil || r.Error == nil {
		return nil
	}
	return &ResponseError{Code: deref(r.Error.Code), Message: deref(r.Error.Message)}
}

// ResponseError is a decoded Storage management error.
type ResponseError struct {
	Code    string
	Message string
}

func (e *ResponseError) Error() string {
	if e.Code == "" {
		return "storage: " + e.Message
	}
	return "storage: " + e.Code + ": " + e.Message
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
