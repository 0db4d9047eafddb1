package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/azmodels/pkg/unions"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fields(output string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func TestFamilies(t *testing.T) {
	out, err := execute(t, "families")
	require.NoError(t, err)

	kinds := map[string]string{}
	for _, row := range fields(out) {
		require.GreaterOrEqual(t, len(row), 2, row)
		kinds[row[0]] = row[1]
	}
	assert.Equal(t, "struct-tagged", kinds["purview.Credential"])
	assert.Equal(t, "enum-kind", kinds["synapse.DataConnection"])
	assert.Equal(t, "page", kinds["storage.ListContainerItems"])
	assert.Equal(t, "model", kinds["storage.Identity"])
}

func TestFamiliesFilters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "review",
			args: []string{"families", "--review"},
			want: []string{
				"storage.DeletedAccountListResult",
				"storage.EncryptionScopeListResult",
				"storage.ListContainerItems",
				"storage.StorageAccountListResult",
				"synapse.OperationListResult",
			},
		},
		{
			name: "service",
			args: []string{"families", "--service", "synapse"},
			want: []string{
				"synapse.DataConnection",
				"synapse.DataConnectionListResult",
				"synapse.Database",
				"synapse.DatabaseListResult",
				"synapse.ErrorResponse",
				"synapse.KustoPool",
				"synapse.KustoPoolListResult",
				"synapse.OperationListResult",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var names []string
			for _, row := range fields(out) {
				names = append(names, row[0])
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "purview.Credential", "testdata/credential_arn.yaml")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "kind: AmazonARN\n"), out)
	assert.Contains(t, out, `"roleARN": "arn:aws:iam::123456789012:role/reader"`)
	assert.Contains(t, out, `"kind": "AmazonARN"`)
}

func TestDecodePage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"value":[{"name":"a","location":"x"}],"nextLink":""}`), 0o600))

	out, err := execute(t, "decode", "storage.StorageAccountListResult", path)
	require.NoError(t, err)
	assert.Contains(t, out, "items: 1\n")
	assert.Contains(t, out, `next: "" more: true`)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		category string
		target   error
	}{
		{
			name:     "unrecognized kind",
			args:     []string{"purview.Credential", "testdata/credential_unknown.yaml"},
			category: "(unrecognized)",
			target:   unions.ErrUnrecognizedDiscriminator,
		},
		{
			name:     "missing kind",
			args:     []string{"purview.Credential", "testdata/credential_nokind.yaml"},
			category: "(malformed)",
			target:   unions.ErrMalformedDiscriminator,
		},
		{
			name:     "missing required field",
			args:     []string{"storage.Identity", "testdata/identity_missing_type.yaml"},
			category: "(field)",
			target:   unions.ErrRequiredField,
		},
		{
			name:   "unknown entry",
			args:   []string{"purview.Nope", "testdata/credential_arn.yaml"},
			target: ErrUnknownEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"decode"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.category)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	out, err := execute(t, "roundtrip", "synapse.Database", "testdata/database_unknown.json")
	require.NoError(t, err)
	assert.Equal(t, "ok testdata/database_unknown.json\n", out)

	out, err = execute(t, "roundtrip", "purview.Credential", "testdata/credential_arn.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "ok testdata/credential_arn.yaml")
}

func TestRoundTripReportsEveryFailure(t *testing.T) {
	out, err := execute(t, "roundtrip", "storage.StorageAccount",
		"testdata/account_extra_field.yaml",
		"testdata/identity_missing_type.yaml",
	)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "testdata/account_extra_field.yaml: round trip changed the document")
	assert.Contains(t, err.Error(), "immutableStorageWithVersioning")
	assert.Contains(t, err.Error(), "testdata/identity_missing_type.yaml: decode (field)")
}

func TestPages(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		fixture string
		want    [][]string
	}{
		{
			name:    "empty link ends purview lists",
			entry:   "purview.ClassificationRuleList",
			fixture: "testdata/rules_pages.yaml",
			want: [][]string{
				{"PAGE", "ITEMS", "NEXT", "MORE"},
				{"1", "1", `"p2"`, "true"},
				{"2", "2", `""`, "false"},
			},
		},
		{
			name:    "empty link is followed by storage lists",
			entry:   "storage.StorageAccountListResult",
			fixture: "testdata/accounts_pages.yaml",
			want: [][]string{
				{"PAGE", "ITEMS", "NEXT", "MORE"},
				{"1", "1", `""`, "true"},
				{"2", "1", `""`, "false"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "pages", tt.entry, tt.fixture, "--run-id", "test-run")
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields(out))
		})
	}
}

func TestPagesMetrics(t *testing.T) {
	out, err := execute(t, "pages", "purview.ClassificationRuleList", "testdata/rules_pages.yaml", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `azmodels_pages_fetched_total{family="purview.ClassificationRuleList"} 2`)
}

func TestPagesErrors(t *testing.T) {
	_, err := execute(t, "pages", "purview.ClassificationRuleList", "testdata/rules_pages_gap.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no page recorded for token "p3"`)

	_, err = execute(t, "pages", "purview.Credential", "testdata/rules_pages.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a page envelope")
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema", "purview.ClassificationRulePattern")
	require.NoError(t, err)
	assert.Contains(t, out, `"const": "Regex"`)
	assert.Contains(t, out, `"title": "purview.ClassificationRulePattern"`)

	dir := t.TempDir()
	_, err = execute(t, "schema", "storage.Identity", "synapse.Database", "-o", dir)
	require.NoError(t, err)
	for _, name := range []string{"storage.Identity.json", "synapse.Database.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	out, err = execute(t, "schema", "storage.Identity",
		"--source", "../../pkg/models/storage", "--module", ModulePath+"/internal/cli")
	require.NoError(t, err)
	assert.Contains(t, out, `"description": "Identity is the managed identity of an account."`)

	_, err = execute(t, "schema", "nope.Nope")
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

const widgetCatalog = `package: widgets
service: test
enums:
  - name: Color
    doc: is the color of a widget.
    values:
      - name: ColorRed
        value: red
`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(widgetCatalog), 0o600))

	out, err := execute(t, "generate", catalog)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "zz_generated_enums.go")+"\n", out)

	src, err := os.ReadFile(filepath.Join(dir, "zz_generated_enums.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package widgets")

	other := t.TempDir()
	_, err = execute(t, "generate", catalog, "-o", other, "--package", "gadgets")
	require.NoError(t, err)
	src, err = os.ReadFile(filepath.Join(other, "zz_generated_enums.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package gadgets")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "azmodels.yml")
	require.NoError(t, os.WriteFile(config, []byte("fixtures:\n  dir: testdata\nlog:\n  level: error\n"), 0o600))

	out, err := execute(t, "--config", config, "decode", "purview.Credential", "credential_arn.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: AmazonARN")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o600))
	_, err = execute(t, "--config", bad, "families")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	// The flag wins over the file.
	_, err = execute(t, "--config", bad, "--log-level", "debug", "families")
	assert.NoError(t, err)

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yml"), "families")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
