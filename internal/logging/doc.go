// Package logging provides opt-in file-based logging with rotation for uecheck.
// When the --debug flag is set, structured JSON logs of every probe, locator
// and synthesis step are written to ~/.uecheck/logs/ for troubleshooting.
//
// By default (without --debug), logging is minimal and goes to stderr only,
// so operator-facing output on stdout stays clean.
package logging
