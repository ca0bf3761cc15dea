// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/erpath/internal/errors"
)

// Sentinel errors for folder selection.
var (
	ErrNoFolders          = errors.New("no folders to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Prompter reads answers to interactive prompts.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// New creates a Prompter using stdin and stdout.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a Prompter with custom reader and writer for testing.
func NewWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// SelectFolder prompts the user to choose one of folders.
//
// Returns:
//   - ErrNoFolders if the list is empty
//   - The folder if only one exists (auto-selects without prompting)
//   - The selected folder based on user input, defaulting to the first
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (p *Prompter) SelectFolder(folders []string) (string, error) {
	if len(folders) == 0 {
		return "", ErrNoFolders
	}

	if len(folders) == 1 {
		return folders[0], nil
	}

	fmt.Fprintln(p.writer, "Multiple game folders found:")
	for i, f := range folders {
		fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, f)
	}
	fmt.Fprint(p.writer, "Select [1]: ")

	input, err := p.readLine()
	if err != nil {
		return "", err
	}

	if input == "" {
		return folders[0], nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	if selection < 1 || selection > len(folders) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(folders))
	}

	return folders[selection-1], nil
}

func (p *Prompter) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input == "" {
			return "", ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
	}
	return strings.TrimSpace(input), nil
}
