// Package logging builds the slog loggers used by erpath.
//
// Terminal output goes through [Handler], a compact colourised text format.
// --log-format json switches to slog's JSON handler, and --log-file adds a
// JSON copy of every record through [MultiHandler]:
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Output: os.Stderr,
//		File:   f,
//	})
//
// The resolver logs every registry probe and file check at debug level, so
// -vv (or ERPATH_DEBUG=1) shows why a folder was or was not detected.
//
// The root command stores its logger with [NewContext]; subcommands read it
// back with [FromContext]. Tests use [ForTest] to route records to t.Log.
package logging
