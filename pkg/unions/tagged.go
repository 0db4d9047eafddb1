package unions

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// ReadDiscriminator returns the string stored under field in the JSON object
// data. Anything that is not an object with a string-valued field yields
// ErrMalformedDiscriminator.
func ReadDiscriminator(data []byte, family, field string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return "", malformed(family, field, "not an object")
	}

	raw, ok := fields[field]
	if !ok {
		return "", malformed(family, field, "missing")
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return "", malformed(family, field, "null")
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", malformed(family, field, "not a string")
	}
	return tag, nil
}

// MarshalTagged encodes payload as a JSON object with the discriminator
// written as its first member. Payload must encode to an object; callers
// pass a method-free alias of the variant to avoid recursing into their own
// MarshalJSON.
func MarshalTagged(field, tag string, payload any) ([]byte, error) {
	body, err := encode(payload)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("%s %q: payload does not encode as an object", field, tag)
	}

	key, err := encode(field)
	if err != nil {
		return nil, err
	}
	val, err := encode(tag)
	if err != nil {
		return nil, err
	}

	rest := bytes.TrimSpace(body[1:])
	var buf bytes.Buffer
	buf.Grow(len(key) + len(val) + len(rest) + 3)
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	if rest[0] != '}' {
		buf.WriteByte(',')
	}
	buf.Write(rest)
	return buf.Bytes(), nil
}

// Marshal encodes v without HTML escaping, so strings captured on decode are
// written back exactly as received.
func Marshal(v any) ([]byte, error) {
	return encode(v)
}

// encode is json.Marshal with HTML escaping turned off for every string in v,
// including the output of nested MarshalJSON methods.
func encode(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}
