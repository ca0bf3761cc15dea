package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-application directories.
const AppName = "erpath"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "ERPATH_CONFIG_DIR"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.yaml"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the erpath configuration directory, honoring
// ERPATH_CONFIG_DIR.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the default configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
