package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/erpath/internal/cli/prompt"
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/logging"
	"github.com/thoreinstein/erpath/internal/output"
	"github.com/thoreinstein/erpath/internal/resolver"
)

var (
	scanOutput      string
	scanInteractive bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "",
		"output format: text, json, yaml, toml (default from config)")
	scanCmd.Flags().BoolVarP(&scanInteractive, "interactive", "i", false,
		"pick one of the folders that contain eldenring.exe")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List every folder checked for eldenring.exe",
	Long: `List every candidate game folder in the order detection checks them,
marking the ones that contain eldenring.exe.

With --interactive, choose one of the folders that contain the executable and
print it. A fuzzy finder is used on a terminal, a numbered list otherwise.`,
	Example: `  # Show all candidates
  erpath scan

  # Pick a folder when several libraries hold the game
  erpath scan --interactive

See Also: erpath detect`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

// scanReport is the structured form of a scan.
type scanReport struct {
	SteamPath  string               `json:"steam_path,omitempty" yaml:"steam_path,omitempty" toml:"steam_path,omitempty"`
	Candidates []resolver.Candidate `json:"candidates" yaml:"candidates" toml:"candidates"`
}

func runScan(cmd *cobra.Command, _ []string) error {
	r := newResolver(cmd)
	root, _ := r.SteamPath()
	report := scanReport{
		SteamPath:  root,
		Candidates: r.ScanAll(root),
	}

	if scanInteractive {
		return pickCandidate(cmd, report.Candidates)
	}

	format, err := outputFormat(scanOutput)
	if err != nil {
		return err
	}
	return output.Render(cmd.OutOrStdout(), format, report, func(w io.Writer) error {
		return writeScanText(w, report)
	})
}

func writeScanText(w io.Writer, report scanReport) error {
	if report.SteamPath != "" {
		fmt.Fprintf(w, "Steam: %s\n\n", report.SteamPath)
	} else {
		fmt.Fprintf(w, "Steam: not found in registry\n\n")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FOUND\tSOURCE\tFOLDER")
	for _, c := range report.Candidates {
		mark := "-"
		if c.Exists {
			mark = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, c.Source, c.Path)
	}
	return tw.Flush()
}

// existingFolders returns the candidates that contain the executable, keeping
// the first of any folders that differ only in letter case. A Steam root such
// as D:\Steam is also an alternate library root, so the same folder can
// appear twice in a scan.
func existingFolders(candidates []resolver.Candidate) []resolver.Candidate {
	found := make([]resolver.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Exists || slices.ContainsFunc(found, func(f resolver.Candidate) bool {
			return strings.EqualFold(f.Path, c.Path)
		}) {
			continue
		}
		found = append(found, c)
	}
	return found
}

func pickCandidate(cmd *cobra.Command, candidates []resolver.Candidate) error {
	found := existingFolders(candidates)
	if len(found) == 0 {
		return errors.NewUserError(
			errors.Wrap(errors.ErrNotFound, "no folder contains "+resolver.ExecutableName),
			"Pass --steam-path or run: erpath validate <folder>",
		)
	}

	var chosen string
	if logging.IsTTY(cmd.InOrStdin()) {
		c, err := prompt.FuzzyPickCandidate(found)
		if err != nil {
			return selectionError(err)
		}
		chosen = c.Path
	} else {
		dirs := make([]string, len(found))
		for i, c := range found {
			dirs[i] = c.Path
		}
		dir, err := newPrompter(cmd).SelectFolder(dirs)
		if err != nil {
			return selectionError(err)
		}
		chosen = dir
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), chosen)
	return err
}

func selectionError(err error) error {
	if errors.Is(err, prompt.ErrSelectionCancelled) || errors.Is(err, prompt.ErrInvalidSelection) {
		return errors.NewUserError(err, "")
	}
	return errors.NewSystemError(err, "")
}
