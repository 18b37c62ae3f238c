// Package toolutil provides the terminal output helpers shared by the CLI
// tools: colored status lines, key-value reporting, and message-block
// printing with payload pretty-printing.
package toolutil

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errColor     = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgBlue, color.Bold)
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Logger returns the shared structured logger. It writes to stderr so log
// lines never mix with message output on stdout.
func Logger() *slog.Logger {
	return logger
}

// PrintSuccess prints a green status line to stdout.
func PrintSuccess(format string, args ...any) {
	successColor.Printf("✔ "+format+"\n", args...)
}

// PrintInfo prints an informational line to stdout.
func PrintInfo(format string, args ...any) {
	infoColor.Printf(format+"\n", args...)
}

// PrintWarning prints a warning line to stderr.
func PrintWarning(format string, args ...any) {
	warnColor.Fprintf(color.Error, "warning: "+format+"\n", args...)
}

// PrintError prints an error line to stderr.
func PrintError(format string, args ...any) {
	errColor.Fprintf(color.Error, "error: "+format+"\n", args...)
}

// PrintKeyValue prints an indented "Key: value" line to stdout.
func PrintKeyValue(key string, value any) {
	keyColor.Printf("  %s: ", key)
	fmt.Printf("%v\n", value)
}
