package synapse

import (
	"strings"

	json "github.com/goccy/go-json"
)

// ErrorResponse is the body of a failed management request.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// Err returns the response as a Go error, or nil when it carries none.
func (r *ErrorResponse) Err() error {
	if r == nil || r.Error == nil {
		return nil
	}
	return &ResponseError{Detail: *r.Error}
}

type ErrorDetail struct {
	Code           *string               `json:"code,omitempty"`
	Message        *string               `json:"message,omitempty"`
	Target         *string               `json:"target,omitempty"`
	Details        []ErrorDetail         `json:"details,omitempty"`
	AdditionalInfo []ErrorAdditionalInfo `json:"additionalInfo,omitempty"`
}

type ErrorAdditionalInfo struct {
	Type *string         `json:"type,omitempty"`
	Info json.RawMessage `json:"info,omitempty"`
}

// ResponseError is a decoded management error.
type ResponseError struct {
	Detail ErrorDetail
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	b.WriteString("synapse: ")
	writeDetail(&b, e.Detail)
	return b.String()
}

func writeDetail(b *strings.Builder, d ErrorDetail) {
	if d.Code != nil {
		b.WriteString(*d.Code)
		b.WriteString(": ")
	}
	if d.Message != nil {
		b.WriteString(*d.Message)
	}
	for _, inner := range d.Details {
		b.WriteString("; ")
		writeDetail(b, inner)
	}
}
