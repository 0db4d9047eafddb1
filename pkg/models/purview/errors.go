package purview

import (
	"fmt"
	"strings"
)

// ErrorModel is the error payload of the scanning service.
type ErrorModel struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Target  *string      `json:"target,omitempty"`
	Details []ErrorModel `json:"details,omitempty"`
}

func (e ErrorModel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if e.Target != nil {
		fmt.Fprintf(&b, " (target %s)", *e.Target)
	}
	for _, d := range e.Details {
		b.WriteString("; ")
		b.WriteString(d.String())
	}
	return b.String()
}

// ErrorResponseModel is the body of a failed request.
type ErrorResponseModel struct {
	Error ErrorModel `json:"error"`
}

// Err returns the response as a Go error.
func (r *ErrorResponseModel) Err() error {
	return &ResponseError{Model: r.Error}
}

// ResponseError is a decoded service error.
type ResponseError struct {
	Model ErrorModel
}

func (e *ResponseError) Error() string {
	return "purview: " + e.Model.String()
}
