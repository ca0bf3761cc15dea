// Package commands implements the CLI commands for erpath.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/erpath/cmd"
	"github.com/thoreinstein/erpath/internal/config"
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/logging"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "ERPATH_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// steamPath holds the value of the --steam-path flag.
var steamPath string

// loadedConfig is the configuration read during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// logCloser closes the --log-file handle after the command finishes.
var logCloser io.Closer

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/erpath/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&steamPath, "steam-path", "",
		"Steam install folder to use instead of the registry")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("erpath version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load(configFile)
	if loadedConfig == nil {
		loadedConfig = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "erpath",
	Short: "Locate the ELDEN RING install folder",
	Long: `erpath finds the ELDEN RING game folder on a Windows machine so a mod
installer can pre-fill or check its target directory.

Detection reads the Steam install path from the registry, then looks for
eldenring.exe in the Steam library and in common library folders on drives
C: through G:. When nothing is found the default Steam location is reported.`,
	Example: `  # Print the detected game folder
  erpath detect

  # Check a folder before installing into it
  erpath validate "D:\SteamLibrary\steamapps\common\ELDEN RING\Game"

  # List every folder that was checked
  erpath scan

  See Also: erpath doctor, erpath config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if logCloser == nil {
			return nil
		}
		err := logCloser.Close()
		logCloser = nil
		return errors.Wrap(err, "closing log file")
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	cfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		cfg.File = f
		logCloser = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a config load failure for commands that depend on it.
// doctor and config inspect a broken file themselves.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "doctor", "path", "gen-doc":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
