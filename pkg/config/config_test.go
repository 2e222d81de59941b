package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worddict", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), reloaded)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
max_prefix = 12

[dict]
backend = "radix"
word_list = "/tmp/words.txt"
cache_ttl_seconds = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Server.MaxPrefix)
	assert.Equal(t, 1, cfg.Server.MinPrefix, "unset keys keep defaults")
	assert.Equal(t, "radix", cfg.Dict.Backend)
	assert.Equal(t, "/tmp/words.txt", cfg.Dict.WordList)
	assert.Equal(t, time.Duration(0), cfg.Dict.CacheTTL())
	assert.Equal(t, "> ", cfg.CLI.Prompt)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// backend has the wrong type, so the struct decode fails
	content := `
[server]
min_prefix = 2

[dict]
backend = 7
cache_ttl_seconds = 60

[cli]
no_filter = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Server.MinPrefix)
	assert.Equal(t, "trie", cfg.Dict.Backend)
	assert.Equal(t, time.Minute, cfg.Dict.CacheTTL())
	assert.True(t, cfg.CLI.NoFilter)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[ not toml"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dict]\nbackend = \"list\"\n"), 0644))

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "list", cfg.Dict.Backend)
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	maxPrefix := 30
	filter := false
	require.NoError(t, cfg.Update(path, nil, &maxPrefix, &filter))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, reloaded.Server.MaxPrefix)
	assert.False(t, reloaded.Server.EnableFilter)
	assert.Equal(t, 1, reloaded.Server.MinPrefix)
	assert.Equal(t, path, GetActiveConfigPath(path))
}
