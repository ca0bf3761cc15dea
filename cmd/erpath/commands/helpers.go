package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/erpath/internal/cli"
	"github.com/thoreinstein/erpath/internal/cli/prompt"
	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/logging"
	"github.com/thoreinstein/erpath/internal/output"
	"github.com/thoreinstein/erpath/internal/resolver"
)

// appFs is the file system probed for the game executable. Nil selects the
// host file system; tests swap in an in-memory one.
var appFs afero.Fs

// newResolver builds a Resolver for cmd honoring --steam-path.
func newResolver(cmd *cobra.Command) *resolver.Resolver {
	return cli.NewResolver(cli.ResolverOptions{
		SteamPath: steamPath,
		Fs:        appFs,
		Logger:    logging.FromContext(cmd.Context()),
	})
}

// newPrompter reads answers from cmd's input and writes prompts to stderr so
// stdout stays machine-readable.
func newPrompter(cmd *cobra.Command) *prompt.Prompter {
	return prompt.NewWithIO(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// outputFormat returns the --output flag value, falling back to the
// configured default.
func outputFormat(flag string) (output.Format, error) {
	if flag == "" && loadedConfig != nil {
		flag = loadedConfig.Output
	}
	f, err := output.ParseFormat(flag)
	if err != nil {
		return "", errors.NewUserError(err, "Use --output text, json, yaml, or toml")
	}
	return f, nil
}

// silentError marks an exit status whose details were already printed.
type silentError struct {
	exit *errors.ExitError
}

func (e *silentError) Error() string { return e.exit.Error() }
func (e *silentError) Unwrap() error { return e.exit }

func newSilentError(msg string, code int) error {
	return &silentError{exit: errors.NewExitError(errors.New(msg), code)}
}

// IsSilent reports whether err should be reported by exit status only.
func IsSilent(err error) bool {
	var s *silentError
	return errors.As(err, &s)
}
