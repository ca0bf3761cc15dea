// Package fsprobe reports whether files exist on a file system.
package fsprobe

import (
	"github.com/spf13/afero"

	"github.com/thoreinstein/erpath/internal/resolver"
)

// Checker answers file existence queries against an afero file system.
type Checker struct {
	fs afero.Fs
}

var _ resolver.FileChecker = (*Checker)(nil)

// New creates a Checker over fs.
func New(fs afero.Fs) *Checker {
	return &Checker{fs: fs}
}

// NewOS creates a Checker over the host file system.
func NewOS() *Checker {
	return New(afero.NewOsFs())
}

// FileExists reports whether path names an existing regular file.
// Directories and any stat failure report false.
func (c *Checker) FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := c.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
