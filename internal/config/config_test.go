package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigFromPath_JSON(t *testing.T) {
	// Test plan:
	// - JSON config parses with all sections
	// - Unset fields pick up defaults

	dir := t.TempDir()
	path := filepath.Join(dir, "clientgen.json")
	writeFile(t, path, `{
	  "discovery": "./books.json",
	  "language": "csharp",
	  "owner": {"name": "Example", "domain": "example.com"}
	}`)

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "./books.json", cfg.Discovery)
	assert.Equal(t, "csharp", cfg.Language)
	assert.Equal(t, "Example", cfg.Owner.Name)
	assert.Equal(t, "example.com", cfg.Owner.Domain)

	// Test: defaults fill the gaps
	assert.Equal(t, "./generated", cfg.Output)
	assert.Equal(t, "250ms", cfg.Dev.Debounce)
}

func TestLoadConfigFromPath_YAML(t *testing.T) {
	// Test: the format follows the file extension
	dir := t.TempDir()
	path := filepath.Join(dir, "clientgen.yaml")
	writeFile(t, path, "discovery: ./books.json\nlanguage: java\ndev:\n  debounce: 1s\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Language)
	assert.Equal(t, "1s", cfg.Dev.Debounce)
}

func TestLoadConfigFromPath_Errors(t *testing.T) {
	// Test plan:
	// - A missing file fails
	// - Malformed content fails with a parse error

	_, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "clientgen.json")
	writeFile(t, path, "{not json")
	_, err = LoadConfigFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigFromDir_SearchesParents(t *testing.T) {
	// Test plan:
	// - The search walks upward from the starting directory
	// - JSON takes precedence over YAML in the same directory
	// - No config anywhere is an error

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, filepath.Join(root, "clientgen.yaml"), "language: csharp\n")

	cfg, foundDir, err := loadConfigFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, root, foundDir)
	assert.Equal(t, "csharp", cfg.Language)

	// Test: a JSON config closer to the start wins
	writeFile(t, filepath.Join(nested, "clientgen.json"), `{"language": "java"}`)
	cfg, foundDir, err = loadConfigFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, nested, foundDir)
	assert.Equal(t, "java", cfg.Language)

	_, _, err = loadConfigFromDir(filepath.Join(t.TempDir(), "empty"))
	require.Error(t, err)
}
