// Package cli implements the rainbox command-line interface.
//
// This package provides commands for composing colored text boxes on the
// terminal: wrapping text in padded banners, laying out delimiter-separated
// data as aligned tables, clipping text to viewports, and panning around a
// box interactively. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - banner: Wrap text in a padded, aligned, colored box
//   - table: Render delimiter-separated rows as an aligned table
//   - view: Clip text to a fixed viewport
//   - pan: Interactively pan a viewport over a file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Theming
//
// Colors default to the terminal scheme; --theme points at a TOML file with
// named colors and default foreground/background selections.
package cli

// appName is the application name used for display and version output.
const appName = "rainbox"
