// Package logging provides the leveled loggers used by the CLI and the
// stress runner. The stack and barrier packages never log.
//
// A Logger is a set of *log.Logger values, one per level, sharing a writer.
// Debug output is discarded unless asked for with the debug argument of New
// or the LFSTACK_DEBUG environment variable.
package logging
