package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileName)

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	content := `
[dict]
dir = "/usr/share/hunspell"
locale = "de_DE"
flag = "long"

[suggest]
max_limit = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/hunspell", cfg.Dict.Dir)
	assert.Equal(t, "de_DE", cfg.Dict.Locale)
	assert.Equal(t, "long", cfg.Dict.Flag)
	assert.Equal(t, 10, cfg.Suggest.MaxLimit)
	assert.Equal(t, 5, cfg.Suggest.DefaultLimit, "unset keys keep defaults")
	assert.True(t, cfg.CLI.Color)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	// max_limit has the wrong type, which fails a struct decode
	content := `
[dict]
locale = "fr_FR"

[suggest]
default_limit = 8
max_limit = "lots"

[cli]
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fr_FR", cfg.Dict.Locale)
	assert.Equal(t, 8, cfg.Suggest.DefaultLimit)
	assert.Equal(t, 64, cfg.Suggest.MaxLimit)
	assert.False(t, cfg.CLI.Color)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("this is [not toml"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestClampLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Suggest.MaxLimit = 10

	assert.Equal(t, 5, cfg.ClampLimit(0))
	assert.Equal(t, 5, cfg.ClampLimit(-1))
	assert.Equal(t, 7, cfg.ClampLimit(7))
	assert.Equal(t, 10, cfg.ClampLimit(99))
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	cfg := DefaultConfig()
	limit := 12
	require.NoError(t, cfg.Update(path, nil, &limit))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, reloaded.Suggest.MaxLimit)
	assert.Equal(t, 5, reloaded.Suggest.DefaultLimit)
}
