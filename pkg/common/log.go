// Package common holds small cross-cutting helpers shared by the
// solving engine's command-line surface: leveled, optionally-colorized
// logging with an optional mirror to a log file.
package common

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// VerboseEnabled controls whether verbose output is shown.
	VerboseEnabled = false
	// LogFile is the path to mirror logs to (empty means stdout/stderr only).
	LogFile = ""

	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	verboseColor = color.New(color.FgCyan)
)

// writeToLogFile writes a message to the log file if LogFile is set.
func writeToLogFile(message string) {
	if LogFile != "" {
		file, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer file.Close()
			fmt.Fprintln(file, message)
		}
	}
}

// Info prints a message to stdout (always shown, regardless of verbose mode).
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// InfoNoNewline prints a message to stdout without a trailing newline.
func InfoNoNewline(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Print(message)
	writeToLogFile(message)
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		message := fmt.Sprintf(format, args...)
		verboseColor.Println("[VERBOSE] " + message)
		writeToLogFile("[VERBOSE] " + message)
	}
}

// Debug is an alias for Verbose for semantic clarity in call sites.
func Debug(format string, args ...interface{}) {
	Verbose(format, args...)
}

// Error prints an error message to stderr (always shown).
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	errorColor.Fprintln(os.Stderr, "ERROR: "+message)
	writeToLogFile("ERROR: " + message)
}

// Warning prints a warning message (always shown).
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	warningColor.Println("WARNING: " + message)
	writeToLogFile("WARNING: " + message)
}
