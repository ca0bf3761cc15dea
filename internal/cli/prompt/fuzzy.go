package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/resolver"
)

// FuzzyPickCandidate opens a fuzzy finder over candidates and returns the
// chosen one. Returns ErrSelectionCancelled when the user aborts.
func FuzzyPickCandidate(candidates []resolver.Candidate) (resolver.Candidate, error) {
	if len(candidates) == 0 {
		return resolver.Candidate{}, ErrNoFolders
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i].Path
		},
		fuzzyfinder.WithPromptString("game folder> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			c := candidates[i]
			return fmt.Sprintf("Folder: %s\nSource: %s\nExecutable: %s",
				c.Path, c.Source, resolver.ExecutablePath(c.Path))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return resolver.Candidate{}, ErrSelectionCancelled
		}
		return resolver.Candidate{}, errors.Wrap(err, "interactive selection failed")
	}

	return candidates[idx], nil
}
