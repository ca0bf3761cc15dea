// Package errors provides error handling conventions for the erpath CLI.
//
// It re-exports the constructors of [github.com/cockroachdb/errors] so that
// callers import a single errors package, defines sentinel errors for
// common failure conditions, and provides [ExitError] for mapping failures
// to process exit codes.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, declined confirmation, configuration)
//   - ExitSystem (2): System-related error (I/O, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrNotConfirmed, "Pass --yes to accept the folder anyway")
//	os.Exit(errors.ExitCode(err))
package errors
