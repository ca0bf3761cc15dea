//go:build !windows

package winreg

import (
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/resolver"
)

// ErrUnsupported is returned on platforms without a registry.
var ErrUnsupported = errors.New("registry not available on this platform")

func readString(resolver.Root, string, string) (string, error) {
	return "", ErrUnsupported
}
