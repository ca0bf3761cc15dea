package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/erpath/internal/output"
	"github.com/thoreinstein/erpath/internal/resolver"
)

var detectOutput string

func init() {
	detectCmd.Flags().StringVarP(&detectOutput, "output", "o", "",
		"output format: text, json, yaml, toml (default from config)")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected game folder",
	Long: `Detect the ELDEN RING game folder.

The Steam install path is read from the registry (64-bit machine key, then the
current user key, then the 32-bit machine key). The Steam library under that
path is checked first, followed by SteamLibrary, Steam and Games\Steam on
drives C: through G:. The first folder containing eldenring.exe wins.

When nothing is found the default Steam location is printed and "detected" is
false. The command still exits 0.`,
	Example: `  # Detect using the registry
  erpath detect

  # Detect from a known Steam folder, as JSON
  erpath detect --steam-path "D:\Steam" -o json

See Also: erpath scan, erpath validate`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(detectOutput)
	if err != nil {
		return err
	}

	res := newResolver(cmd).Resolve()

	return output.Render(cmd.OutOrStdout(), format, res, func(w io.Writer) error {
		return writeDetectText(w, res)
	})
}

func writeDetectText(w io.Writer, res resolver.Result) error {
	if quiet {
		_, err := fmt.Fprintln(w, res.Path)
		return err
	}
	if res.Detected {
		_, err := fmt.Fprintf(w, "%s %s\n", color.GreenString("found"), res.Path)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s (default, %s not found)\n",
		color.YellowString("default"), res.Path, resolver.ExecutableName)
	return err
}
