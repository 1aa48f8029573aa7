// Package logging configures the structured loggers used by fakegen.
//
// Loggers are plain *slog.Logger values. Library packages (schema,
// generate) accept one through their options and fall back to Nop when none
// is given; the CLI builds the real one from --log-level, --log-format and
// --log-file:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("definition compiled", "fields", 3)
//
// Log output always goes to stderr (or a log file), never to stdout, so
// generated records can be piped without interleaving.
package logging
