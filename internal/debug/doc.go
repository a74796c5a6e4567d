// Package debug provides opt-in debug logging for noticias.
//
// The terminal is owned by the UI while the program runs, so diagnostics
// (tab changes, query updates, resizes, config warnings) go to a log file
// enabled with the --debug flag.
package debug
