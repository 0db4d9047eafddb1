package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "azmodels.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
fixtures:
  dir: recorded
schema:
  output: schemas
`), 0o600))

	tests := []struct {
		name  string
		flags []string
		want  Config
	}{
		{
			name: "file values apply",
			want: Config{ConfigPath: path, LogLevel: "debug", LogFormat: "json", FixturesDir: "recorded", SchemaOutput: "schemas"},
		},
		{
			name:  "flags win",
			flags: []string{"--log-level=error", "--output=out"},
			want:  Config{ConfigPath: path, LogLevel: "error", LogFormat: "json", FixturesDir: "recorded", SchemaOutput: "out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.ConfigPath = path

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "")
			flags.StringVar(&config.SchemaOutput, "output", config.SchemaOutput, "")
			require.NoError(t, flags.Parse(tt.flags))

			require.NoError(t, loadConfigFile(&config, flags))
			assert.Equal(t, tt.want, config)
		})
	}
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azmodels.yml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0o600))

	config := DefaultConfig()
	config.ConfigPath = path
	err := loadConfigFile(&config, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigFileDefaultMissing(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, loadConfigFile(&config, nil))
	assert.Equal(t, DefaultConfig(), config)
}

func TestFixturePath(t *testing.T) {
	config := Config{FixturesDir: "testdata"}
	assert.Equal(t, "testdata/credential_arn.yaml", config.fixturePath("testdata/credential_arn.yaml"))
	assert.Equal(t, filepath.Join("testdata", "credential_arn.yaml"), config.fixturePath("credential_arn.yaml"))
	assert.Equal(t, "/abs/x.yaml", config.fixturePath("/abs/x.yaml"))
	assert.Equal(t, "x.yaml", Config{}.fixturePath("x.yaml"))
}
