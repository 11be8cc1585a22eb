package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const decoratorColumn = 28

// Simple delegate for decoration list items.
type decorationDelegate struct {
	offset int
}

func (d decorationDelegate) Height() int  { return 1 }
func (d decorationDelegate) Spacing() int { return 0 }
func (d decorationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d decorationDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	dec, ok := item.(decorationItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var nameStyle, decoratorStyle lipgloss.Style

	var displayName string

	width := m.Width() - decoratorColumn - 2

	text := fmt.Sprintf("%s  %s  %s", dec.name, dec.rule, dec.position)

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		decoratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(decoratorColumn)

		displayName = animateScroll(text, width, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		decoratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(decoratorColumn)

		displayName = truncateToWidth(text, width)
	}

	line := fmt.Sprintf("%s  %s",
		decoratorStyle.Render(truncateToWidth(dec.decorator, decoratorColumn)),
		nameStyle.Render(displayName),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// Ticks to hold still before scrolling.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// listModel browses the decorated functions of a project.
type listModel struct {
	width        int
	height       int
	items        list.Model
	delegate     decorationDelegate
	total        int
	totalFiles   int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newListModel() listModel {
	delegate := decorationDelegate{}
	items := list.New([]list.Item{}, delegate, 80, 20)
	items.SetShowPagination(false)
	items.SetShowFilter(true)
	items.SetShowHelp(false)
	items.SetShowTitle(false)
	items.SetShowStatusBar(false)
	items.FilterInput.Placeholder = "Filter by function or path…"

	return listModel{
		items:        items,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m listModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.items.SetWidth(m.width)

	case tickMsg:
		if m.items.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.items.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.items.Update(msg)
			m.items = newList

			// Restart the scroll when the selection moves.
			if m.items.Index() != m.lastSelected {
				m.lastSelected = m.items.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.items.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case decorationsMsg:
		m = m.handleDecorationsMsg(msg)
	}

	return m, cmd
}

func (m listModel) handleDecorationsMsg(msg decorationsMsg) listModel {
	m.total = len(msg.items)
	m.totalFiles = msg.files

	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		items = append(items, item)
	}

	m.items.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m listModel) View() string {
	if !m.rendered {
		return "Collecting decorated functions…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("fndecorate: decorated functions")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Decorations: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m listModel) renderTable() string {
	// Title, summary, footer, border and header take nine rows.
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin, border and padding take six columns.
	listWidth := m.width - 6

	m.items.SetHeight(listHeight)
	m.items.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", decoratorColumn, "Decorator", "Function"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.items.View(),
		),
	)
}
