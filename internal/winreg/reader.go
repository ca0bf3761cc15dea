package winreg

import (
	"log/slog"

	"github.com/thoreinstein/erpath/internal/resolver"
)

// Reader reads string values from the host registry.
type Reader struct {
	logger *slog.Logger
}

var _ resolver.RegistryReader = (*Reader)(nil)

// New creates a Reader. A nil logger uses slog.Default.
func New(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadValue returns the string value stored at root\subKey\valueName.
func (r *Reader) ReadValue(root resolver.Root, subKey, valueName string) (string, bool) {
	value, err := readString(root, subKey, valueName)
	if err != nil {
		r.logger.Debug("registry value unavailable",
			"root", string(root), "key", subKey, "value", valueName, "error", err)
		return "", false
	}
	return value, true
}

// Static serves values from a fixed map keyed by Key.
type Static map[string]string

var _ resolver.RegistryReader = Static(nil)

// Key formats the lookup key used by Static.
func Key(root resolver.Root, subKey, valueName string) string {
	return string(root) + `\` + subKey + `:` + valueName
}

// ReadValue returns the mapped value, if any.
func (s Static) ReadValue(root resolver.Root, subKey, valueName string) (string, bool) {
	v, ok := s[Key(root, subKey, valueName)]
	return v, ok
}

// SteamOverride returns a reader that reports steamPath for every Steam probe.
func SteamOverride(steamPath string) Static {
	s := make(Static, len(resolver.SteamProbes))
	for _, p := range resolver.SteamProbes {
		s[Key(p.Root, p.SubKey, p.ValueName)] = steamPath
	}
	return s
}
