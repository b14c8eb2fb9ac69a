// Package common holds the ambient conveniences shared by every cmd/ and
// pkg/ package: logging and small file-path helpers. None of it is
// consulted by the solver itself.
package common

import (
	"fmt"
	"os"
)

var (
	// VerboseEnabled controls whether Verbose/Debug output is shown.
	VerboseEnabled = false
	// LogFile is the path to additionally append log lines to (empty
	// disables file logging).
	LogFile = ""
)

func writeToLogFile(message string) {
	if LogFile == "" {
		return
	}
	file, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	defer file.Close()
	fmt.Fprintln(file, message)
}

// Info prints a message to stdout, always shown.
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if !VerboseEnabled {
		return
	}
	message := fmt.Sprintf("[VERBOSE] "+format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Debug is an alias for Verbose for semantic clarity at call sites.
func Debug(format string, args ...interface{}) {
	Verbose(format, args...)
}

// Warning prints a warning message, always shown.
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf("WARNING: "+format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Error prints an error message to stderr, always shown.
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf("ERROR: "+format, args...)
	fmt.Fprintln(os.Stderr, message)
	writeToLogFile(message)
}
