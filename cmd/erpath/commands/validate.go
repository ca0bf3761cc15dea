package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/erpath/internal/config"
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/logging"
)

var (
	validateYes  bool
	validateSave bool
)

func init() {
	validateCmd.Flags().BoolVarP(&validateYes, "yes", "y", false,
		"accept a folder without eldenring.exe without asking")
	validateCmd.Flags().BoolVar(&validateSave, "save", false,
		"store the accepted folder as install_dir in the config file")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [folder]",
	Short: "Check that a folder contains eldenring.exe",
	Long: `Check that a game folder contains eldenring.exe.

Without an argument the configured install_dir is checked, or the detected
folder when none is configured. A folder without the executable prints a
warning and asks for confirmation. The warning is advisory: answering yes
accepts the folder anyway.

Exit codes:
  0 - Folder accepted
  1 - Folder declined`,
	Example: `  # Check a folder
  erpath validate "E:\SteamLibrary\steamapps\common\ELDEN RING\Game"

  # Accept and remember a folder
  erpath validate --yes --save "E:\Games\ELDEN RING\Game"

See Also: erpath detect, erpath config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())
	r := newResolver(cmd)

	var dir string
	switch {
	case len(args) == 1:
		dir = args[0]
	case loadedConfig != nil && loadedConfig.InstallDir != "":
		dir = loadedConfig.InstallDir
		logger.Info("validating configured install_dir", "path", dir)
	default:
		dir = r.Resolve().Path
		logger.Info("validating detected folder", "path", dir)
	}

	v := r.Validate(dir)
	if !v.Valid {
		accepted, err := confirmFolder(cmd, v.Message)
		if err != nil {
			return err
		}
		if !accepted {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNotConfirmed, "folder %s", dir),
				"Choose the folder that contains eldenring.exe",
			)
		}
		logger.Warn("accepted folder without executable", "path", dir)
	}

	if validateSave {
		if err := saveInstallDir(dir); err != nil {
			return err
		}
		logger.Info("saved install_dir", "path", dir, "config", configPath())
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), dir)
	return err
}

// confirmFolder shows warning and asks the user to accept the folder.
func confirmFolder(cmd *cobra.Command, warning string) (bool, error) {
	if validateYes {
		if !quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), warning)
		}
		return true, nil
	}
	ok, err := newPrompter(cmd).Confirm(warning)
	if err != nil {
		return false, errors.NewSystemError(err, "")
	}
	return ok, nil
}

func saveInstallDir(dir string) error {
	cfg := config.Default()
	if loadedConfig != nil {
		c := *loadedConfig
		cfg = &c
	}
	cfg.InstallDir = dir

	path := configPath()
	if err := config.Save(path, cfg); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}
	loadedConfig = cfg
	return nil
}
