// Package logging configures the structured loggers used by mockdata.
//
// It is a thin layer over log/slog. The generator never logs above debug
// level: unresolved placeholders, unknown generators and malformed rule
// suffixes degrade silently and are only visible with debug logging on.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	engine := template.New(template.WithLogger(logger))
//
// Components accept a *slog.Logger through an option and fall back to
// Nop when none is given.
package logging
