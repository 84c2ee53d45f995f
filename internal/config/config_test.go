package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.Empty(t, cfg.Types)
	assert.Empty(t, cfg.ExcludeFiles)
	assert.Zero(t, cfg.NumWorkers)
	assert.False(t, cfg.EnableAsync)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	const configBody = `
paths:
  - ./src
  - ./tools
types: [go, python]
exclude_files: [vendor, "*_test.go"]
num_workers: 8
enable_async: true
output:
  format: json
  path: out.json
logging:
  level: debug
`

	path := filepath.Join(t.TempDir(), "toukei.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configBody), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./src", "./tools"}, cfg.Paths)
	assert.Equal(t, []string{"go", "python"}, cfg.Types)
	assert.Equal(t, []string{"vendor", "*_test.go"}, cfg.ExcludeFiles)
	assert.Equal(t, uint(8), cfg.NumWorkers)
	assert.True(t, cfg.EnableAsync)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "out.json", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "empty paths", body: "paths: []\n", want: ErrNoPaths},
		{name: "bad format", body: "output:\n  format: xml\n", want: ErrInvalidFormat},
		{name: "excessive workers", body: "num_workers: 100000\n", want: ErrTooManyWorker},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "toukei.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

			_, err := Load(path)

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Paths:  []string{"."},
		Output: OutputConfig{Format: "csv"},
	}
	assert.NoError(t, valid.Validate())

	noPaths := valid
	noPaths.Paths = nil
	assert.ErrorIs(t, noPaths.Validate(), ErrNoPaths)

	badFormat := valid
	badFormat.Output.Format = "toml"
	assert.ErrorIs(t, badFormat.Validate(), ErrInvalidFormat)
}
