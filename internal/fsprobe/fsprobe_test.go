package fsprobe

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/erpath/internal/logging"
	"github.com/thoreinstein/erpath/internal/resolver"
)

func TestChecker_FileExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/games/elden/Game", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/games/elden/Game/eldenring.exe", []byte("MZ"), 0o644))

	c := New(fs)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: "/games/elden/Game/eldenring.exe", want: true},
		{name: "directory", path: "/games/elden/Game", want: false},
		{name: "missing file", path: "/games/elden/Game/start_protected_game.exe", want: false},
		{name: "missing parent", path: "/nowhere/eldenring.exe", want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.FileExists(tt.path))
		})
	}
}

func TestNewOS(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, resolver.ExecutableName)
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), exe, nil, 0o600))

	c := NewOS()

	assert.True(t, c.FileExists(exe))
	assert.False(t, c.FileExists(dir))
}

// Windows-style paths are plain names on other hosts, so a memory file
// system can stand in for a Windows machine in resolver tests.
func TestChecker_WithResolver(t *testing.T) {
	fs := afero.NewMemMapFs()
	gameDir := resolver.GameDir(`D:\SteamLibrary`)
	require.NoError(t, afero.WriteFile(fs, resolver.ExecutablePath(gameDir), []byte("MZ"), 0o644))

	r := resolver.New(nil, New(fs), resolver.WithLogger(logging.ForTest(t)))

	assert.True(t, r.Validate(gameDir).Valid)
	assert.False(t, r.Validate(`C:\SomeRandomFolder`).Valid)
}
