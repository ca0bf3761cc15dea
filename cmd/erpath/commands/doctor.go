package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/erpath/internal/cli"
	"github.com/thoreinstein/erpath/internal/config"
	"github.com/thoreinstein/erpath/internal/doctor"
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/logging"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose detection and configuration issues",
	Long: `Run diagnostic checks on game detection and erpath configuration.

Checks the Steam registry entries, whether eldenring.exe was found, the
configured install_dir, and the config file itself.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorQuiet, doctorVerbose} {
		if set {
			count++
		}
	}

	if count > 1 {
		return errors.NewUserError(
			errors.New("flags --json, --quiet, and --verbose are mutually exclusive"), "")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	registry := cli.NewRegistry(steamPath, logger)
	r := newResolver(cmd)

	installDir := ""
	if loadedConfig != nil {
		installDir = loadedConfig.InstallDir
	}

	runner := doctor.NewRunner(
		doctor.NewSteamRegistryCheck(registry),
		doctor.NewGameDetectionCheck(r),
		doctor.NewInstallDirCheck(r, installDir),
		doctor.NewConfigCheck(configFile, func(string) (*config.Config, error) {
			return loadedConfig, configLoadErr
		}),
	)

	report := runner.Run()
	logger.Debug("doctor finished", "worst", report.Worst().String(), "duration", report.Duration)

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errDoctorErrors
	case doctor.SeverityWarning:
		return errDoctorWarnings
	default:
		return nil
	}
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	return outputDoctorText(w, report)
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) error {
	shown := report.Problems()
	if doctorVerbose {
		shown = report.Results
	}

	for _, result := range shown {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && result.Status.IsProblem() {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if len(shown) > 0 {
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return err
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

var (
	// errDoctorWarnings is reported as exit code 1.
	errDoctorWarnings = newSilentError("warnings found", errors.ExitUser)

	// errDoctorErrors is reported as exit code 2.
	errDoctorErrors = newSilentError("errors found", errors.ExitSystem)
)
