//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/videos.txt",
			expected: filepath.Join(home, "videos.txt"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/share/vidcat/videos.txt",
			expected: "/usr/share/vidcat/videos.txt",
		},
		{
			name:     "relative path unchanged",
			input:    "data/videos.txt",
			expected: "data/videos.txt",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "vidcat", "config.toml"), paths[0])
	assert.Equal(t, "config.toml", paths[1])
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Catalog)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.ColorEnabled())
	assert.True(t, cfg.InteractiveEnabled())
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global.toml")
	local := filepath.Join(dir, "local.toml")
	require.NoError(t, os.WriteFile(global, []byte(`
catalog = "/srv/videos.txt"
color = false
prompt = "vidcat> "
`), 0o600))
	require.NoError(t, os.WriteFile(local, []byte(`
catalog = "local.toml.txt"
interactive = false
`), 0o600))

	cfg, err := LoadFrom(global, local)
	require.NoError(t, err)

	assert.Equal(t, "local.toml.txt", cfg.Catalog)
	assert.Equal(t, "vidcat> ", cfg.Prompt)
	assert.False(t, cfg.ColorEnabled())
	assert.False(t, cfg.InteractiveEnabled())
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("catalog = \n"), 0o600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestColorEnabled(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{name: "unset defaults to true", config: Config{}, expected: true},
		{name: "explicit true", config: Config{Color: &yes}, expected: true},
		{name: "explicit false", config: Config{Color: &no}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.ColorEnabled())
		})
	}
}
