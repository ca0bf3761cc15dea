package prompt

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/erpath/internal/errors"
)

// Confirm prints message followed by a [y/N] prompt and reports whether the
// user answered yes. Anything other than y or yes, including EOF, is no.
func (p *Prompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.writer, "%s [y/N]: ", message)

	input, err := p.readLine()
	if err != nil {
		if errors.Is(err, ErrSelectionCancelled) {
			fmt.Fprintln(p.writer)
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
