package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/lint"
)

// ruleGroups names each family of node types that share a rule list, with
// one representative type.
var ruleGroups = []struct {
	label string
	node  document.NodeType
}{
	{"text", document.NodeText},
	{"frames", document.NodeFrame},
	{"shapes", document.NodeEllipse},
}

// rulesCommand creates the rules command.
func (c *CLI) rulesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		Long: `List the built-in rules, whether each is enabled by the current
configuration, and the node types it runs on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			engine, err := lint.NewEngine(cfg.EngineOptions())
			if err != nil {
				return err
			}
			printRules(cmd.OutOrStdout(), engine)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: discovered designlint.toml)")
	return cmd
}

// appliesTo lists the node groups that run rule. Disabled misuse rules
// report the groups where their fallback runs.
func appliesTo(engine *lint.Engine, rule string) string {
	var groups []string
	for _, g := range ruleGroups {
		for _, r := range engine.RulesFor(g.node) {
			if r.Name() == rule {
				groups = append(groups, g.label)
				break
			}
		}
	}
	if len(groups) == 0 {
		return "-"
	}
	return strings.Join(groups, ", ")
}

// printRules renders the rule table.
func printRules(w io.Writer, engine *lint.Engine) {
	rules := engine.Rules()
	rows := make([][]string, len(rules))
	for i, r := range rules {
		status := "on"
		if !engine.Enabled(r.Name()) {
			status = "off"
		}
		rows[i] = []string{r.Name(), status, appliesTo(engine, r.Name()), r.Description()}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Rule", "Status", "Applies to", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0:
				return base.Foreground(colorCyan)
			case 1:
				if rows[row][1] == "on" {
					return base.Foreground(colorGreen)
				}
				return base.Foreground(colorDim)
			case 2:
				return base.Foreground(colorGray)
			}
			return base
		})
	fmt.Fprintln(w, t.Render())
}
