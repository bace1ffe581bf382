package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/slugger/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slugger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no limit", func(c *Config) { c.Data.Limit = 0 }, true},
		{"upper case values", func(c *Config) { c.Output.Format = "JSON"; c.Logging.Level = "DEBUG" }, true},
		{"empty enums", func(c *Config) { c.Output.Format = ""; c.Data.Compression = "" }, true},
		{"empty path", func(c *Config) { c.Data.Path = "  " }, false},
		{"negative limit", func(c *Config) { c.Data.Limit = -1 }, false},
		{"bad compression", func(c *Config) { c.Data.Compression = "snappy" }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, false},
		{"bad encoding", func(c *Config) { c.Logging.Encoding = "logfmt" }, false},
		{"bad format", func(c *Config) { c.Output.Format = "csv" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SLUGGER_TEST_LEVEL", "debug")

	path := writeConfig(t, `
data:
  path: ${SLUGGER_TEST_DATA:-fixtures/Batting.csv.gz}
  limit: 100
logging:
  level: ${SLUGGER_TEST_LEVEL}
observability:
  tracing: true
  pretty_trace: true
output:
  format: json
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/Batting.csv.gz", cfg.Data.Path)
	assert.Equal(t, 100, cfg.Data.Limit)
	assert.Equal(t, "auto", cfg.Data.Compression)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding)
	assert.True(t, cfg.Observability.Tracing)
	assert.True(t, cfg.Observability.PrettyTrace)
	assert.False(t, cfg.Observability.Metrics)
	assert.Equal(t, "slugger", cfg.Observability.ServiceName)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeFile))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "data: [unclosed"))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "data:\n  limit: -5\n"))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Data.Path = "Batting.csv.lz4"
	cfg.Observability.Metrics = true

	require.NoError(t, Save(path, cfg))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("SLUGGER_A", "alpha")
	t.Setenv("SLUGGER_EMPTY", "")

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"${SLUGGER_A}", "alpha"},
		{"x-${SLUGGER_A}-${SLUGGER_A}", "x-alpha-alpha"},
		{"${SLUGGER_UNSET_VAR}", ""},
		{"${SLUGGER_UNSET_VAR:-dflt}", "dflt"},
		{"${SLUGGER_EMPTY:-dflt}", "dflt"},
		{"${SLUGGER_A:-dflt}", "alpha"},
		{"${unterminated", "${unterminated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, substituteEnvVars(tt.in), tt.in)
	}
}

func TestSubstituteEnvVars_ValuesAreNotReexpanded(t *testing.T) {
	t.Setenv("SLUGGER_SELF", "${SLUGGER_SELF}")
	t.Setenv("SLUGGER_NESTED", "${SLUGGER_A:-x}")
	t.Setenv("SLUGGER_A", "alpha")

	done := make(chan string, 1)
	go func() {
		done <- substituteEnvVars("data:\n  path: ${SLUGGER_SELF}\n  compression: ${SLUGGER_NESTED}\n")
	}()

	select {
	case got := <-done:
		assert.Equal(t, "data:\n  path: ${SLUGGER_SELF}\n  compression: ${SLUGGER_A:-x}\n", got)
	case <-time.After(2 * time.Second):
		t.Fatal("substituteEnvVars did not return")
	}
}
