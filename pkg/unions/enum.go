package unions

import (
	"bytes"
	"slices"

	json "github.com/goccy/go-json"
)

// DecodeEnum decodes an open string enum. Any JSON string is accepted and
// stored verbatim, including values the current model version does not know;
// encoding the ~string value writes the same string back. A JSON null leaves
// dst untouched.
func DecodeEnum[E ~string](data []byte, family string, dst *E) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return malformed(family, "", "not a string")
	}
	*dst = E(s)
	return nil
}

// Known reports whether v is one of values.
func Known[E ~string](v E, values []E) bool {
	return slices.Contains(values, v)
}
