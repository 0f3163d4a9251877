package lint

import (
	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
)

// DefaultRadii is the radius allow-list used when none is configured.
var DefaultRadii = []float64{0, 2, 4, 8, 16, 24, 32}

// Options configures an Engine.
type Options struct {
	Radii           []float64 // Allowed corner radii (nil = DefaultRadii)
	TextFills       StyleSet  // Style keys reserved for text
	BackgroundFills StyleSet  // Style keys reserved for backgrounds
	Disabled        []string  // Rule names to skip
	IgnoreNodes     []string  // Node IDs to skip (children are still checked)
}

// Report is the outcome of linting one document tree.
type Report struct {
	Violations   Violations
	NodesChecked int
}

// Engine runs the built-in rules over nodes, choosing rules by node type.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	rules    map[string]Rule
	disabled map[string]bool
	ignore   map[string]bool
}

var (
	textRules  = []string{RuleText, RuleBackgroundColorMisuse, RuleEffects, RuleStroke}
	frameRules = []string{RuleTextColorMisuse, RuleEffects, RuleStroke, RuleRadius}
	shapeRules = []string{RuleFill, RuleEffects, RuleStroke}
)

// misuseFallback names the rule run in place of a disabled misuse rule.
var misuseFallback = map[string]string{
	RuleTextColorMisuse:       RuleFill,
	RuleBackgroundColorMisuse: RuleFill,
}

// NewEngine validates opts and builds an engine.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Radii == nil {
		opts.Radii = DefaultRadii
	}
	if err := errors.ValidateRadii(opts.Radii); err != nil {
		return nil, err
	}

	e := &Engine{
		rules:    builtinRules(opts),
		disabled: make(map[string]bool, len(opts.Disabled)),
		ignore:   make(map[string]bool, len(opts.IgnoreNodes)),
	}
	for _, name := range opts.Disabled {
		if _, ok := e.rules[name]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown rule %q", name)
		}
		e.disabled[name] = true
	}
	for _, id := range opts.IgnoreNodes {
		e.ignore[id] = true
	}
	return e, nil
}

// Rules returns the built-in rules in documentation order.
func (e *Engine) Rules() []Rule {
	rules := make([]Rule, 0, len(RuleNames))
	for _, name := range RuleNames {
		rules = append(rules, e.rules[name])
	}
	return rules
}

// Enabled reports whether the named rule runs.
func (e *Engine) Enabled(name string) bool {
	_, ok := e.rules[name]
	return ok && !e.disabled[name]
}

// RulesFor returns the rules applied to nodes of type t. Disabled misuse
// rules are replaced by the plain fill rule.
func (e *Engine) RulesFor(t document.NodeType) []Rule {
	var names []string
	switch t {
	case document.NodeText:
		names = textRules
	case document.NodeFrame, document.NodeComponent, document.NodeComponentSet,
		document.NodeInstance, document.NodeRectangle:
		names = frameRules
	case document.NodeEllipse, document.NodePolygon, document.NodeStar,
		document.NodeVector, document.NodeLine, document.NodeBooleanOperation:
		names = shapeRules
	default:
		return nil
	}

	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		if e.disabled[name] {
			fallback, ok := misuseFallback[name]
			if !ok || e.disabled[fallback] {
				continue
			}
			name = fallback
		}
		rules = append(rules, e.rules[name])
	}
	return rules
}

// LintNode checks a single node, not its children.
func (e *Engine) LintNode(node *document.Node) Violations {
	if node == nil || e.ignore[node.ID] {
		return nil
	}
	var vs Violations
	for _, rule := range e.RulesFor(node.Type) {
		vs.Add(rule.Check(node))
	}
	return vs
}

// LintTree checks root and all of its descendants in document order.
func (e *Engine) LintTree(root *document.Node) *Report {
	report := &Report{}
	document.Walk(root, func(n *document.Node) bool {
		report.NodesChecked++
		report.Violations = append(report.Violations, e.LintNode(n)...)
		return true
	})
	return report
}

// LintDocument checks every node of doc.
func (e *Engine) LintDocument(doc *document.Document) *Report {
	if doc == nil {
		return &Report{}
	}
	return e.LintTree(doc.Root)
}
