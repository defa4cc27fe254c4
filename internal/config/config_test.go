package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray .env or config file is read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	for _, key := range []string{"USERDEMO_LOG_LEVEL", "USERDEMO_LOG_FORMAT", "USERDEMO_DEMO_NAME", "USERDEMO_DEMO_EMAIL", "USERDEMO_DEMO_AGE", "USERDEMO_DEMO_AGES"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "John Doe", cfg.Demo.Name)
	assert.Equal(t, "john@example.com", cfg.Demo.Email)
	assert.Equal(t, 25, cfg.Demo.Age)
	assert.Equal(t, []int{18, 25, 30, 45}, cfg.Demo.Ages)
}

func TestLoad_EnvVarOverride(t *testing.T) {
	isolate(t)
	t.Setenv("USERDEMO_LOG_LEVEL", "debug")
	t.Setenv("USERDEMO_DEMO_NAME", "Jane Smith")
	t.Setenv("USERDEMO_DEMO_AGE", "30")
	t.Setenv("USERDEMO_DEMO_AGES", "20,40")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Jane Smith", cfg.Demo.Name)
	assert.Equal(t, 30, cfg.Demo.Age)
	assert.Equal(t, []int{20, 40}, cfg.Demo.Ages)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	unsetEnv(t, "USERDEMO_DEMO_EMAIL")
	unsetEnv(t, "USERDEMO_DEMO_NAME")
	t.Setenv("USERDEMO_DEMO_AGE", "50")

	content := "# local overrides\nUSERDEMO_DEMO_EMAIL=\"jane@example.com\"\nUSERDEMO_DEMO_NAME='Jane'\nUSERDEMO_DEMO_AGE=60\nnot a pair\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("USERDEMO_DEMO_EMAIL")
		_ = os.Unsetenv("USERDEMO_DEMO_NAME")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", cfg.Demo.Email)
	assert.Equal(t, "Jane", cfg.Demo.Name)
	// the real environment wins over .env
	assert.Equal(t, 50, cfg.Demo.Age)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	unsetEnv(t, "USERDEMO_LOG_FORMAT")
	unsetEnv(t, "USERDEMO_DEMO_AGES")

	content := "log:\n  format: json\ndemo:\n  ages: [1, 2, 3]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []int{1, 2, 3}, cfg.Demo.Ages)
}

func TestLoad_InvalidLogSettings(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "level", key: "USERDEMO_LOG_LEVEL", value: "loud"},
		{name: "format", key: "USERDEMO_LOG_FORMAT", value: "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
