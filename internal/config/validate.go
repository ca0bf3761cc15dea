package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/erpath/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidOutput indicates an unrecognized output format.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"text", "json", "yaml", "toml"}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "%d", cfg.Version))
	}

	if cfg.Output != "" && !slices.Contains(OutputFormats, cfg.Output) {
		errs = append(errs, &FieldError{Field: KeyOutput, Value: cfg.Output, Err: ErrInvalidOutput})
	}

	if err := validatePath(cfg.InstallDir); err != nil {
		errs = append(errs, &FieldError{Field: KeyInstallDir, Value: cfg.InstallDir, Err: err})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
