package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
		wantErr string
	}{
		{
			name:    "json kept verbatim",
			file:    "ds.json",
			content: "{\"kind\":\"AmazonS3\",  \"name\":\"ds1\"}\n",
			want:    `{"kind":"AmazonS3",  "name":"ds1"}`,
		},
		{
			name:    "yaml",
			file:    "ds.yaml",
			content: "kind: AmazonS3\nname: ds1\nproperties:\n  serviceUrl: https://s3.example.com\n",
			want:    `{"kind":"AmazonS3","name":"ds1","properties":{"serviceUrl":"https://s3.example.com"}}`,
		},
		{
			name:    "yaml numbers and lists",
			file:    "list.yml",
			content: "value:\n  - kind: Regex\n    pattern: '^a'\ncount: 2\n",
			want:    `{"count":2,"value":[{"kind":"Regex","pattern":"^a"}]}`,
		},
		{name: "invalid json", file: "bad.json", content: "{", wantErr: "invalid JSON"},
		{name: "empty json", file: "empty.json", content: "  ", wantErr: "fixture is empty"},
		{name: "empty yaml", file: "empty.yaml", content: "", wantErr: "fixture is empty"},
		{name: "invalid yaml", file: "bad.yaml", content: "a: [", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.file, tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.file == "ds.json" {
				assert.Equal(t, tt.want, string(got))
				return
			}
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read fixture")
}

func TestNormalizeTimestamps(t *testing.T) {
	got, err := Normalize([]byte("createdAt: 2021-06-01T10:00:00Z\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"createdAt":"2021-06-01T10:00:00Z"}`, string(got))
}

func TestNormalizeNull(t *testing.T) {
	got, err := Normalize([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestParsePages(t *testing.T) {
	p, err := ParsePages([]byte(`
pages:
  - body: {value: [{kind: AmazonS3}], nextLink: p2}
  - token: p2
    body: {value: [], nextLink: ""}
`))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	first, err := p.Body(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[{"kind":"AmazonS3"}],"nextLink":"p2"}`, string(first))

	token := "p2"
	second, err := p.Body(&token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[],"nextLink":""}`, string(second))

	missing := "p3"
	_, err = p.Body(&missing)
	assert.EqualError(t, err, `no page recorded for token "p3"`)
}

func TestParsePagesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no pages", "other: 1\n", "missing or empty 'pages' field"},
		{"no body", "pages:\n  - token: a\n", "page 0: missing 'body' field"},
		{"two first pages", "pages:\n  - body: {}\n  - body: {}\n", "only the first page may omit 'token'"},
		{"duplicate token", "pages:\n  - body: {}\n  - token: a\n    body: {}\n  - token: a\n    body: {}\n", `token "a" recorded twice`},
		{"no first page", "pages:\n  - token: a\n    body: {}\n", "no page without 'token'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePages([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEmptyStringTokenIsDistinct(t *testing.T) {
	p, err := ParsePages([]byte("pages:\n  - body: {nextLink: \"\"}\n  - token: \"\"\n    body: {value: []}\n"))
	require.NoError(t, err)

	empty := ""
	body, err := p.Body(&empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[]}`, string(body))
}
