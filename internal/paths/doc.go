// Package paths resolves the directories erpath uses for its own files.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// On Linux the configuration lives in ~/.config/erpath, on macOS in
// ~/Library/Application Support/erpath and on Windows in
// %LOCALAPPDATA%\erpath.
//
// Set ERPATH_CONFIG_DIR to relocate the configuration directory, which is
// how tests isolate themselves from the user's real configuration.
package paths
