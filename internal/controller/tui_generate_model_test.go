package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestGenerateModel_Progress(t *testing.T) {
	m := newGenerateModel()
	if m.Init() != nil {
		t.Fatalf("Init() should not schedule commands")
	}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, _ = model.Update(upcomingMsg{files: 4, threads: 2})
	model, _ = model.Update(fileDoneMsg{path: "a.go", decorations: 2})
	model, _ = model.Update(fileDoneMsg{path: "b.go"})

	updated := model.(generateModel)
	if updated.completed != 2 || updated.decorations != 2 || len(updated.recent) != 1 {
		t.Fatalf("unexpected state: completed=%d decorations=%d recent=%d", updated.completed, updated.decorations, len(updated.recent))
	}

	if got := updated.percent(); got != 0.5 {
		t.Fatalf("percent() = %v, want 0.5", got)
	}

	view := updated.View()
	if !strings.Contains(view, "a.go") || strings.Contains(view, "b.go") {
		t.Fatalf("View() should list only decorated files\n%s", view)
	}

	model, cmd := updated.Update(generatedMsg{overlay: "/c/overlay.json", files: 1, total: 2})
	if cmd == nil {
		t.Fatalf("generatedMsg should quit")
	}

	final := model.(generateModel)
	if !final.finished || final.percent() != 1 {
		t.Fatalf("generatedMsg did not finish the model")
	}

	if !strings.Contains(final.View(), "/c/overlay.json") {
		t.Fatalf("View() missing overlay path")
	}
}

func TestGenerateModel_RecentIsBounded(t *testing.T) {
	var model tea.Model = newGenerateModel()
	for range recentFiles + 3 {
		model, _ = model.Update(fileDoneMsg{path: "x.go", decorations: 1})
	}

	if got := len(model.(generateModel).recent); got != recentFiles {
		t.Fatalf("recent = %d, want %d", got, recentFiles)
	}
}

func TestGenerateModel_ZeroFiles(t *testing.T) {
	m := newGenerateModel()
	if m.percent() != 0 {
		t.Fatalf("percent() with no files = %v", m.percent())
	}

	if !strings.Contains(m.View(), "waiting for decorated files") {
		t.Fatalf("View() missing placeholder")
	}
}
