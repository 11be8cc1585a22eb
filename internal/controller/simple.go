package controller

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	m "github.com/mouse-blink/fndecorate/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; nothing runs in the background.
func (s *SimpleUI) Wait() {}

// DisplayUpcomingFiles is silent in plain mode.
func (s *SimpleUI) DisplayUpcomingFiles(_ int, _ int) {}

// DisplayFileTransformed is silent in plain mode.
func (s *SimpleUI) DisplayFileTransformed(_ m.FileResult) {}

// DisplayGenerated prints a per-file table and the overlay location.
func (s *SimpleUI) DisplayGenerated(overlay m.Path, results []m.FileResult) error {
	if len(results) == 0 {
		s.printf("No decorated functions found\n")

		return nil
	}

	sorted := sortedResults(results)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Decorations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})
	table.SetAutoWrapText(false)

	total := 0

	for _, r := range sorted {
		table.Append([]string{string(r.Source.Origin), fmt.Sprintf("%d", len(r.Decorations))})
		total += len(r.Decorations)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s\noverlay: %s\n", tableBuffer.String(), overlay)

	return nil
}

// DisplayDecorations prints one row per applied directive.
func (s *SimpleUI) DisplayDecorations(results []m.FileResult) error {
	rows := decorationRows(results)
	if len(rows) == 0 {
		s.printf("No decorated functions found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Decorator", "Parameters", "Position"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, d := range rows {
		table.Append([]string{d.QualifiedName(), d.Decorator, ruleSummary(d), d.Position})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(rows)), "", "", ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayEmitted writes the transformed source verbatim.
func (s *SimpleUI) DisplayEmitted(result m.FileResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.cmd.OutOrStdout().Write(result.Output)

	return err
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func sortedResults(results []m.FileResult) []m.FileResult {
	sorted := make([]m.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Source.Origin < sorted[j].Source.Origin })

	return sorted
}

func decorationRows(results []m.FileResult) []m.Decoration {
	var rows []m.Decoration
	for _, r := range sortedResults(results) {
		rows = append(rows, r.Decorations...)
	}

	return rows
}

func ruleSummary(d m.Decoration) string {
	summary := d.Rule
	if summary == "" {
		summary = "all"
	}

	if d.Override != "" {
		summary += ", returns " + d.Override
	}

	if d.Async {
		summary += ", async"
	}

	return summary
}
