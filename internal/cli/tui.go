package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/designlint/pkg/lint"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailKeyStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	detailPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// ViolationListModel - Interactive violation browser
// =============================================================================

// ViolationListModel is the bubbletea model for browsing violations.
// Tab cycles a type filter; enter toggles a detail pane for the selected row.
type ViolationListModel struct {
	Rows    []violationRow
	Cursor  int
	Height  int
	Offset  int
	Filter  string // violation type, or "" for all
	Details bool

	visible []int // indexes into Rows that pass Filter
}

// NewViolationListModel creates a new violation browser.
func NewViolationListModel(rows []violationRow) ViolationListModel {
	m := ViolationListModel{Rows: rows, Height: 15}
	m.applyFilter()
	return m
}

func (m *ViolationListModel) applyFilter() {
	m.visible = nil
	for i, r := range m.Rows {
		if m.Filter == "" || r.Violation.Type == m.Filter {
			m.visible = append(m.visible, i)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

// nextFilter cycles "" -> each type present -> "".
func (m *ViolationListModel) nextFilter() {
	present := make(map[string]bool)
	for _, r := range m.Rows {
		present[r.Violation.Type] = true
	}
	var cycle []string
	cycle = append(cycle, "")
	for _, typ := range lint.Types {
		if present[typ] {
			cycle = append(cycle, typ)
		}
	}
	for i, f := range cycle {
		if f == m.Filter {
			m.Filter = cycle[(i+1)%len(cycle)]
			break
		}
	}
	m.applyFilter()
}

// Selected returns the row under the cursor, or nil when the list is empty.
func (m ViolationListModel) Selected() *violationRow {
	if len(m.visible) == 0 {
		return nil
	}
	return &m.Rows[m.visible[m.Cursor]]
}

func (m ViolationListModel) Init() tea.Cmd {
	return nil
}

func (m ViolationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "tab":
			m.nextFilter()
		case "enter":
			m.Details = !m.Details
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ViolationListModel) View() string {
	var b strings.Builder

	title := "Violations"
	if m.Filter != "" {
		title += " · " + m.Filter
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⇥ filter type  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(StyleSuccess.Render("No violations"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[m.visible[i]]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.Violation.Node.String(), r.Violation.Type, r.Violation.Message})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Type", "Message").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 2 {
				base = base.Foreground(typeColor(m.Rows[m.visible[idx]].Violation.Type))
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			if col == 2 {
				return base
			}
			return base.Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.visible))))
	b.WriteString("\n")

	if m.Details {
		b.WriteString(m.detailView(m.Selected()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ViolationListModel) detailView(r *violationRow) string {
	v := r.Violation
	lines := []string{
		detailKeyStyle.Render("Document") + " " + StyleValue.Render(r.Source),
		detailKeyStyle.Render("Node") + " " + StyleValue.Render(v.Node.String()),
	}
	if v.Node != nil {
		lines = append(lines, detailKeyStyle.Render("Layer")+" "+StyleValue.Render(string(v.Node.Type)))
	}
	lines = append(lines,
		detailKeyStyle.Render("Type")+" "+lipgloss.NewStyle().Foreground(typeColor(v.Type)).Render(v.Type),
		detailKeyStyle.Render("Message")+" "+StyleValue.Render(v.Message),
	)
	if v.Value != "" {
		lines = append(lines, detailKeyStyle.Render("Value")+" "+StyleValue.Render(v.Value))
	}
	return detailPaneStyle.Render(strings.Join(lines, "\n"))
}

// runBrowser opens the violation browser and blocks until the user quits.
func runBrowser(rows []violationRow) error {
	_, err := tea.NewProgram(NewViolationListModel(rows), tea.WithAltScreen()).Run()
	return err
}
