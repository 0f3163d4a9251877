package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/pipeline"
)

// Palette. ANSI 256 codes chosen to stay readable on dark and light themes.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorPurple = lipgloss.Color("141")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// Status marks, rendered once.
var (
	markSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	markError   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	markWarning = lipgloss.NewStyle().Foreground(colorYellow).Render("!")
	markInfo    = lipgloss.NewStyle().Foreground(colorGray).Render("›")
)

// typeColors colors each violation type consistently across the table and
// the interactive browser.
var typeColors = map[string]lipgloss.Color{
	lint.TypeRadius:  colorBlue,
	lint.TypeEffects: colorPurple,
	lint.TypeFill:    colorRed,
	lint.TypeStroke:  colorYellow,
	lint.TypeText:    colorCyan,
}

func typeColor(typ string) lipgloss.Color {
	if c, ok := typeColors[typ]; ok {
		return c
	}
	return colorWhite
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, markSuccess, fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, markError, fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, markWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, " ", StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints "key         value" with the key column padded.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key), StyleValue.Render(value))
}

// =============================================================================
// Lint Output
// =============================================================================

// violationRow is one flattened violation for tabular display.
type violationRow struct {
	Source    string
	Violation lint.Violation
}

// flattenViolations lists every violation in document order.
func flattenViolations(result *pipeline.Result) []violationRow {
	var rows []violationRow
	for i := range result.Documents {
		doc := &result.Documents[i]
		for _, v := range doc.Violations {
			rows = append(rows, violationRow{Source: doc.Source, Violation: v})
		}
	}
	return rows
}

// renderViolationTable renders violations as a bordered table.
func renderViolationTable(rows []violationRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Source, r.Violation.Node.String(), r.Violation.Type, r.Violation.Message, r.Violation.Value}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Document", "Node", "Type", "Message", "Value").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0, 4:
				return base.Foreground(colorGray)
			case 2:
				return base.Foreground(typeColor(rows[row].Violation.Type))
			}
			return base
		})
	return t.Render()
}

// printLintResult prints the styled lint output: failures, the violation
// table and a summary line.
func printLintResult(w io.Writer, result *pipeline.Result) {
	for i := range result.Documents {
		if doc := &result.Documents[i]; doc.Failed() {
			printError(w, "%s: %v", doc.Source, doc.Err)
		}
	}

	rows := flattenViolations(result)
	if len(rows) > 0 {
		fmt.Fprintln(w, renderViolationTable(rows))
	}
	printSummary(w, result.Stats)
}

// printSummary prints totals on a single line, followed by per-type counts.
func printSummary(w io.Writer, stats pipeline.Stats) {
	counts := StyleDim.Render(fmt.Sprintf("%d documents · %d nodes", stats.Documents, stats.Nodes))
	if stats.Violations == 0 {
		printSuccess(w, "No violations  %s", counts)
		return
	}
	printError(w, "%s violations  %s", StyleNumber.Render(fmt.Sprint(stats.Violations)), counts)
	printDetail(w, "%s", formatByType(stats.ByType))
}

// formatByType renders "fill 2 · text 1" in lint type order, then any
// unknown types alphabetically.
func formatByType(byType map[string]int) string {
	var parts []string
	seen := make(map[string]bool, len(byType))
	for _, typ := range lint.Types {
		if n := byType[typ]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", typ, n))
		}
		seen[typ] = true
	}
	var rest []string
	for typ := range byType {
		if !seen[typ] {
			rest = append(rest, typ)
		}
	}
	sort.Strings(rest)
	for _, typ := range rest {
		parts = append(parts, fmt.Sprintf("%s %d", typ, byType[typ]))
	}
	return strings.Join(parts, " · ")
}
