// Package fixture loads wire documents written as YAML or JSON and hands
// them to the codec as JSON bytes.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned for a fixture with no document in it.
var ErrEmpty = errors.New("fixture is empty")

// Load reads the fixture at path. A .json file is returned byte for byte so
// round trips compare against exactly what was written; anything else is
// parsed as YAML and re-encoded as JSON.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("%s: invalid JSON", path)
		}
		return data, nil
	}
	out, err := Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Normalize converts a YAML (or JSON) document to JSON.
func Normalize(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse as YAML or JSON: %w", err)
	}
	if doc == nil {
		if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
			return []byte("null"), nil
		}
		return nil, ErrEmpty
	}
	v, err := jsonValue(doc)
	if err != nil {
		return nil, err
	}
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}

// jsonValue rewrites the YAML-only shapes (non-string map keys, timestamps)
// into values the JSON encoder accepts.
func jsonValue(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			conv, err := jsonValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = conv
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			conv, err := jsonValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = conv
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			conv, err := jsonValue(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = conv
		}
		return out, nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	default:
		return v, nil
	}
}
