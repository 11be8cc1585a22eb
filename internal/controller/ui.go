// Package controller provides output adapters for displaying decoration results.
package controller

import (
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeList
	ModeEmit
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithGenerateMode sets the UI to overlay generation mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithListMode sets the UI to decoration listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithEmitMode sets the UI to single-file emission mode.
func WithEmitMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEmit
	}
}

// UI defines the interface for presenting workflow results.
// Implementations can use different output methods (simple text, TUI, etc).
// The Display methods may be called from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish
	DisplayUpcomingFiles(count int, threads int)
	DisplayFileTransformed(result m.FileResult)
	DisplayGenerated(overlay m.Path, results []m.FileResult) error
	DisplayDecorations(results []m.FileResult) error
	DisplayEmitted(result m.FileResult) error
}
