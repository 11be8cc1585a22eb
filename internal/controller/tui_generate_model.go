package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const recentFiles = 8

// generateModel shows transformation progress and quits once the overlay is written.
type generateModel struct {
	width       int
	progressBar progress.Model
	files       int
	threads     int
	completed   int
	decorations int
	recent      []fileDoneMsg
	overlay     string
	finished    bool
}

func newGenerateModel() generateModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return generateModel{progressBar: prog}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case upcomingMsg:
		m.files = msg.files
		m.threads = msg.threads
		m.completed = 0

	case fileDoneMsg:
		m.completed++
		if msg.decorations > 0 {
			m.decorations += msg.decorations
			m.recent = append(m.recent, msg)

			if len(m.recent) > recentFiles {
				m.recent = m.recent[len(m.recent)-recentFiles:]
			}
		}

	case generatedMsg:
		m.finished = true
		m.overlay = msg.overlay
		m.decorations = msg.total
		m.completed = m.files

		return m, tea.Quit
	}

	return m, nil
}

func (m generateModel) percent() float64 {
	if m.files == 0 {
		return 0
	}

	return float64(m.completed) / float64(m.files)
}

func (m generateModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("fndecorate: generating overlay")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  Decorations: %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.files)),
		accentStyle.Render(fmt.Sprintf("%d", m.decorations)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent()))

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(4).Align(lipgloss.Right)

	lines := make([]string, 0, len(m.recent))
	for _, f := range m.recent {
		lines = append(lines, fmt.Sprintf("%s  %s",
			countStyle.Render(fmt.Sprintf("%d", f.decorations)),
			fileStyle.Render(truncateToWidth(f.path, max(m.width-12, 10))),
		))
	}

	if len(lines) == 0 {
		lines = append(lines, "waiting for decorated files…")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 0, 1).
		Render(strings.Join(lines, "\n"))

	parts := []string{title, summary, progressView, box}

	if m.finished {
		parts = append(parts, lipgloss.NewStyle().Padding(1, 0, 0, 2).Render("overlay: "+accentStyle.Render(m.overlay)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}
