// Package ui wraps github.com/briandowns/spinner for the CLI's progress UX.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/eng618/nonosolve/pkg/common"
)

// Spinner wraps spinner.Spinner, suspending itself around log lines so
// output never tears.
type Spinner struct {
	s *spinner.Spinner
}

// New creates a spinner with the CLI's default cadence and color.
func New(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner, unless verbose mode is enabled (verbose output
// would otherwise race with the spinner's redraws).
func (s *Spinner) Start() {
	if !common.VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateMessage replaces the spinner's suffix text.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, prints an info line, and restarts it.
func (s *Spinner) LogInfo(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	common.Info(format, args...)
	if wasRunning && !common.VerboseEnabled {
		s.s.Start()
	}
}

// LogWarning stops the spinner, prints a warning line, and restarts it.
func (s *Spinner) LogWarning(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	common.Warning(format, args...)
	if wasRunning && !common.VerboseEnabled {
		s.s.Start()
	}
}
