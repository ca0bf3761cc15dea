// Package cli wires the resolver's capabilities for command-line use.
package cli

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/thoreinstein/erpath/internal/fsprobe"
	"github.com/thoreinstein/erpath/internal/logging"
	"github.com/thoreinstein/erpath/internal/resolver"
	"github.com/thoreinstein/erpath/internal/winreg"
)

// ResolverOptions selects the capabilities backing a Resolver.
type ResolverOptions struct {
	// SteamPath, when set, replaces the registry with a reader that reports
	// this path for every Steam probe.
	SteamPath string

	// Fs is the file system probed for the executable. Defaults to the host
	// file system.
	Fs afero.Fs

	Logger *slog.Logger
}

// NewResolver builds a Resolver from opts.
func NewResolver(opts ResolverOptions) *resolver.Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	registry := NewRegistry(opts.SteamPath, logger)

	files := fsprobe.NewOS()
	if opts.Fs != nil {
		files = fsprobe.New(opts.Fs)
	}

	return resolver.New(registry, files, resolver.WithLogger(logger))
}

// NewRegistry returns the host registry reader, or a static reader serving
// steamPath for every Steam probe when steamPath is set.
func NewRegistry(steamPath string, logger *slog.Logger) resolver.RegistryReader {
	if steamPath != "" {
		logger.Debug("using steam path override", "path", steamPath)
		return winreg.SteamOverride(steamPath)
	}
	return winreg.New(logger)
}
