package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thoreinstein/erpath/internal/logging"
	"github.com/thoreinstein/erpath/pkg/winpath"
)

// Result is the outcome of installation detection.
type Result struct {
	// Path is the game folder containing eldenring.exe, or DefaultGamePath.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Detected is true when Path was found on disk rather than defaulted.
	Detected bool `json:"detected" yaml:"detected" toml:"detected"`
}

// Validation is the outcome of checking a user-selected folder.
type Validation struct {
	Valid bool `json:"valid" yaml:"valid" toml:"valid"`

	// Message is the advisory warning for an invalid folder. It is empty
	// when Valid is true.
	Message string `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
}

// Resolver detects and validates game installation folders.
//
// A Resolver computes its Result once and returns the cached value from then
// on. Construct a new Resolver to force detection to run again.
type Resolver struct {
	registry RegistryReader
	files    FileChecker
	logger   *slog.Logger

	once   sync.Once
	result Result
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for probe diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver backed by the given capabilities.
// A nil capability reports every lookup as absent.
func New(registry RegistryReader, files FileChecker, opts ...Option) *Resolver {
	if registry == nil {
		registry = absentRegistry
	}
	if files == nil {
		files = absentFiles
	}

	r := &Resolver{
		registry: registry,
		files:    files,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SteamPath returns the Steam install path from the first registry probe in
// SteamProbes that yields a non-empty value.
func (r *Resolver) SteamPath() (string, bool) {
	for _, p := range SteamProbes {
		value, ok := r.registry.ReadValue(p.Root, p.SubKey, p.ValueName)
		if ok && value != "" {
			r.logger.Debug("steam registry probe hit",
				"probe", p.Name, "root", string(p.Root), "key", p.SubKey, "path", value)
			return value, true
		}
		r.logger.Debug("steam registry probe miss",
			"probe", p.Name, "root", string(p.Root), "key", p.SubKey)
	}
	return "", false
}

// FindInLibraryFolders returns the first game folder containing the
// executable, checking the library under steamRoot before the alternate
// library roots. An empty steamRoot skips the Steam library, leaving only
// the alternate roots to check.
func (r *Resolver) FindInLibraryFolders(steamRoot string) (string, bool) {
	for _, dir := range Candidates(steamRoot) {
		ok := r.hasExecutable(dir)
		r.logger.Log(context.Background(), logging.LevelTrace, "checking candidate folder",
			"dir", dir, "found", ok)
		if ok {
			r.logger.Debug("game executable found", "dir", dir)
			return dir, true
		}
	}
	r.logger.Debug("game executable not found in any library", "steam_root", steamRoot)
	return "", false
}

// Resolve returns the detected game folder, falling back to DefaultGamePath
// with Detected false. Only the first call touches the capabilities.
func (r *Resolver) Resolve() Result {
	r.once.Do(func() {
		r.result = r.detect()
		r.logger.Debug("resolved game folder",
			"path", r.result.Path, "detected", r.result.Detected)
	})
	return r.result
}

func (r *Resolver) detect() Result {
	if steamRoot, ok := r.SteamPath(); ok {
		if dir, found := r.FindInLibraryFolders(steamRoot); found {
			return Result{Path: dir, Detected: true}
		}
	}
	return Result{Path: DefaultGamePath, Detected: false}
}

// Validate checks that dir contains the executable. An invalid folder
// carries a warning naming dir; the warning is advisory only.
func (r *Resolver) Validate(dir string) Validation {
	if r.hasExecutable(dir) {
		return Validation{Valid: true}
	}
	return Validation{Valid: false, Message: fmt.Sprintf(warningTemplate, dir)}
}

// PostInstallMessage returns the post-installation instructions.
func (r *Resolver) PostInstallMessage() string {
	return PostInstallMessage
}

func (r *Resolver) hasExecutable(dir string) bool {
	return r.files.FileExists(ExecutablePath(dir))
}

// ExecutablePath returns the path of the executable inside dir.
func ExecutablePath(dir string) string {
	return winpath.Join(dir, ExecutableName)
}
