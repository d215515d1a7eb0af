package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a config.toml into dir and opens a store over it.
func writeConfig(t *testing.T, dir, content string) *ConfigStore {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_MissingFileStartsEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.GetString("github_token"))
	assert.Zero(t, store.GetInt("max_files"))
}

func TestNewConfigStore_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "repodeck")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_ReadsRepodeckKeys(t *testing.T) {
	store := writeConfig(t, t.TempDir(), `
github_token = "ghp_example"
data_dir = "/var/lib/repodeck"
max_files = 40
max_cards = 25
batch_size = 4
`)

	assert.Equal(t, "ghp_example", store.GetString("github_token"))
	assert.Equal(t, "/var/lib/repodeck", store.GetString("data_dir"))
	assert.Equal(t, 40, store.GetInt("max_files"))
	assert.Equal(t, 25, store.GetInt("max_cards"))
	assert.Equal(t, 4, store.GetInt("batch_size"))
}

func TestConfigStore_NestedTablesFlattenToDotKeys(t *testing.T) {
	store := writeConfig(t, t.TempDir(), `
[github]
token = "ghp_nested"

[ingest]
max_files = 30
`)

	assert.Equal(t, "ghp_nested", store.GetString("github.token"))
	assert.Equal(t, 30, store.GetInt("ingest.max_files"))

	_, ok := store.Get("github")
	assert.False(t, ok, "table headers are not values")
}

func TestConfigStore_Get(t *testing.T) {
	store := writeConfig(t, t.TempDir(), `github_token = "ghp_example"`)

	val, ok := store.Get("github_token")
	assert.True(t, ok)
	assert.Equal(t, "ghp_example", val)

	_, ok = store.Get("unknown_key")
	assert.False(t, ok)
}

func TestConfigStore_GetStringWrongType(t *testing.T) {
	store := writeConfig(t, t.TempDir(), `max_files = 40`)

	assert.Empty(t, store.GetString("max_files"))
}

func TestConfigStore_GetIntWrongType(t *testing.T) {
	store := writeConfig(t, t.TempDir(), `
github_token = "ghp_example"
ratio = 0.5
`)

	assert.Zero(t, store.GetInt("github_token"))
	assert.Zero(t, store.GetInt("ratio"))
}

func TestConfigStore_LoadPicksUpEdits(t *testing.T) {
	tmpDir := t.TempDir()
	store := writeConfig(t, tmpDir, `max_files = 40`)
	require.Equal(t, 40, store.GetInt("max_files"))

	err := os.WriteFile(store.Path(), []byte(`max_files = 10`), 0600)
	require.NoError(t, err)

	require.NoError(t, store.Load())
	assert.Equal(t, 10, store.GetInt("max_files"))
}

func TestConfigStore_LoadAfterFileRemovedStartsEmpty(t *testing.T) {
	store := writeConfig(t, t.TempDir(), `max_files = 40`)
	require.NoError(t, os.Remove(store.Path()))

	require.NoError(t, store.Load())
	assert.Zero(t, store.GetInt("max_files"))
}

func TestNewConfigStore_MalformedTOML(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("max_files = = 40"), 0600)
	require.NoError(t, err)

	_, err = NewConfigStore(tmpDir)
	assert.Error(t, err)
}
