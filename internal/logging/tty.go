package logging

import (
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and wrappers that expose a descriptor.
type fder interface {
	Fd() uintptr
}

// IsTTY reports whether v, typically a reader or writer, is attached to a
// terminal. Values without a file descriptor are never terminals.
func IsTTY(v any) bool {
	if f, ok := v.(fder); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether ANSI colour should be written to v.
// NO_COLOR and TERM=dumb disable colour even on a terminal.
func SupportsColor(v any) bool {
	return supportsColor(IsTTY(v))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
