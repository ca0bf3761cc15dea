package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/erpath/internal/config"
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/output"
)

var configShowOutput string

func init() {
	configShowCmd.Flags().StringVarP(&configShowOutput, "output", "o", "",
		"output format: text, json, yaml, toml (default: yaml)")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage erpath configuration",
	Long: `Manage erpath configuration stored in $XDG_CONFIG_HOME/erpath/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show configuration
  erpath config

  # Remember a game folder
  erpath config set install_dir "E:\SteamLibrary\steamapps\common\ELDEN RING\Game"

See Also: erpath validate --save, erpath doctor`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configPath())
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Settable keys:
  output        default output format: text, json, yaml, toml
  install_dir   game folder used by validate when no folder is given`,
	Example: `  # Default to JSON output
  erpath config set output json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	flag := configShowOutput
	if flag == "" {
		flag = string(output.FormatYAML)
	}
	format, err := output.ParseFormat(flag)
	if err != nil {
		return errors.NewUserError(err, "Use --output text, json, yaml, or toml")
	}

	cfg := loadedConfig
	return output.Render(cmd.OutOrStdout(), format, cfg, func(w io.Writer) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		_, err = w.Write(data)
		return err
	})
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	c := *loadedConfig
	cfg := &c
	if err := config.Set(cfg, key, value); err != nil {
		return errors.NewUserError(err, "Run: erpath config set --help")
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.NewUserError(errs[0], "")
	}

	path := configPath()
	if err := config.Save(path, cfg); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}
	loadedConfig = cfg

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return err
}

// configPath is the --config value or the default file location.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.Path()
}
