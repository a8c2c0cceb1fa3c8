package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rskv-p/fpgrowth/config"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fpgrowth.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.MinSupport)
	assert.Equal(t, constant.OutputTable, cfg.Output)
	assert.False(t, cfg.Store.Enabled)
}

func TestLoad_WeakTypesAndEnv(t *testing.T) {
	t.Setenv("TEST_DSN", "host=db user=fp")
	path := writeConfig(t, `{
		"min_support": "3",
		"output": "json",
		"store": {"enabled": "true", "dialect": "postgres", "dsn": "${TEST_DSN}"}
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinSupport)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "postgres", cfg.Store.Dialect)
	assert.Equal(t, "host=db user=fp", cfg.Store.DSN)

	// untouched keys keep their defaults
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, constant.DefaultHTTPAddr, cfg.HTTPAddr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, `{"min_support": 2`))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, `{"min_supprt": 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_supprt")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FPG_MIN_SUPPORT", "5")
	t.Setenv("FPG_MIN_SUPPORT_RATIO", "0.1")
	t.Setenv("FPG_OUTPUT", "plain")
	t.Setenv("FPG_STORE_ENABLED", "yes")
	t.Setenv("FPG_STORE_DSN", "runs.db")

	cfg := config.LoadFromEnv(constant.EnvPrefix)
	assert.Equal(t, 5, cfg.MinSupport)
	assert.InDelta(t, 0.1, cfg.MinSupportRatio, 1e-9)
	assert.Equal(t, "plain", cfg.Output)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "sqlite", cfg.Store.Dialect)
	assert.Equal(t, "runs.db", cfg.Store.DSN)
}

func TestLoadWithFallback(t *testing.T) {
	t.Setenv(constant.EnvConfigPath, writeConfig(t, `{"min_support": 7}`))
	cfg, err := config.LoadWithFallback()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MinSupport)

	t.Setenv(constant.EnvConfigPath, "")
	t.Setenv("FPG_MIN_SUPPORT", "9")
	cfg, err = config.LoadWithFallback()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MinSupport)
}

func TestValidate_ListsEveryProblem(t *testing.T) {
	cfg := config.Default()
	cfg.MinSupport = 0
	cfg.Output = "xml"
	cfg.Encoding = "ebcdic"
	cfg.Delimiter = ";;"
	cfg.LogLevel = "loud"
	cfg.Store = config.StoreConfig{Enabled: true, Dialect: "oracle"}

	err := cfg.Validate()
	require.ErrorIs(t, err, constant.ErrInvalidConfig)
	for _, key := range []string{"min_support(0)", "output(xml)", "encoding(ebcdic)", "delimiter", "log_level(loud)", "store.dialect(oracle)", "store.dsn"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidate_RatioReplacesCount(t *testing.T) {
	cfg := config.Default()
	cfg.MinSupport = 0
	cfg.MinSupportRatio = 0.3
	assert.NoError(t, cfg.Validate())

	cfg.MinSupportRatio = 1.5
	assert.ErrorContains(t, cfg.Validate(), "min_support_ratio")
}

func TestDelimiterRune(t *testing.T) {
	cases := map[string]rune{"": 0, ",": ',', ";": ';', `\t`: '\t', "tab": '\t', "|": '|'}
	for in, want := range cases {
		cfg := &config.Config{Delimiter: in}
		got, err := cfg.DelimiterRune()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := (&config.Config{Delimiter: "ab"}).DelimiterRune()
	assert.Error(t, err)

	opts := (&config.Config{Delimiter: ";", Format: "csv", Encoding: "latin1"}).TxnOptions()
	assert.Equal(t, ';', opts.Delimiter)
	assert.Equal(t, "csv", opts.Format)
	assert.Equal(t, "latin1", opts.Encoding)
}

func TestConfig_StringAndDump(t *testing.T) {
	cfg := config.Default()
	assert.Contains(t, cfg.String(), `"min_support": 2`)

	var buf bytes.Buffer
	cfg.Dump(&buf)
	assert.Contains(t, buf.String(), `"dialect": "sqlite"`)
}
