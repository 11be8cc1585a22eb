package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. List mode
// runs a browsable list, generate mode a progress view; emit mode writes
// plainly.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	switch cfg.mode {
	case ModeList:
		return t.startWithModel(newListModel(), tea.WithAltScreen())
	case ModeGenerate:
		return t.startWithModel(newGenerateModel())
	default:
		t.mu.Lock()
		t.started = true
		t.mu.Unlock()

		return nil
	}
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts = append(opts, tea.WithOutput(t.output))
	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	program, done := t.program, t.done

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start(WithListMode())
	}
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayUpcomingFiles announces the number of files about to be transformed.
func (t *TUI) DisplayUpcomingFiles(count int, threads int) {
	t.send(upcomingMsg{files: count, threads: threads})
}

// DisplayFileTransformed reports a finished file.
func (t *TUI) DisplayFileTransformed(result m.FileResult) {
	t.send(fileDoneMsg{path: string(result.Source.Origin), decorations: len(result.Decorations)})
}

// DisplayGenerated completes the progress view.
func (t *TUI) DisplayGenerated(overlay m.Path, results []m.FileResult) error {
	total := 0
	for _, r := range results {
		total += len(r.Decorations)
	}

	if !t.send(generatedMsg{overlay: string(overlay), files: len(results), total: total}) {
		_, _ = fmt.Fprintf(t.output, "Decorated %d functions across %d files\noverlay: %s\n", total, len(results), overlay)
	}

	return nil
}

// DisplayDecorations fills the interactive list.
func (t *TUI) DisplayDecorations(results []m.FileResult) error {
	t.ensureStarted()

	msg := decorationsMsg{files: len(results)}
	for _, d := range decorationRows(results) {
		msg.items = append(msg.items, decorationItem{
			name:      d.QualifiedName(),
			decorator: d.Decorator,
			rule:      ruleSummary(d),
			position:  d.Position,
		})
	}

	if !t.send(msg) {
		_, _ = fmt.Fprintf(t.output, "Found %d decorated functions across %d files\n", len(msg.items), msg.files)
	}

	return nil
}

// DisplayEmitted writes the transformed source verbatim.
func (t *TUI) DisplayEmitted(result m.FileResult) error {
	_, err := t.output.Write(result.Output)

	return err
}
