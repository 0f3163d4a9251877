package lint

import "github.com/matzehuels/designlint/pkg/document"

// Built-in rule names.
const (
	RuleRadius                = "radius"
	RuleEffects               = "effects"
	RuleFill                  = "fill"
	RuleStroke                = "stroke"
	RuleText                  = "text"
	RuleTextColorMisuse       = "text-color-misuse"
	RuleBackgroundColorMisuse = "background-color-misuse"
)

// RuleNames lists every built-in rule in the order they are documented.
var RuleNames = []string{
	RuleRadius,
	RuleEffects,
	RuleFill,
	RuleStroke,
	RuleText,
	RuleTextColorMisuse,
	RuleBackgroundColorMisuse,
}

// Rule is a named check over a single node.
type Rule interface {
	// Name returns the kebab-case identifier used in configuration.
	Name() string

	// Description returns a one-line summary of what the rule checks.
	Description() string

	// Check inspects node and returns the violation found, or nil.
	Check(node *document.Node) *Violation
}

// CheckFunc checks a single node.
type CheckFunc func(node *document.Node) *Violation

// NewRule builds a Rule from a check function.
func NewRule(name, description string, check CheckFunc) Rule {
	return &funcRule{name: name, description: description, check: check}
}

type funcRule struct {
	name        string
	description string
	check       CheckFunc
}

func (r *funcRule) Name() string        { return r.name }
func (r *funcRule) Description() string { return r.description }

func (r *funcRule) Check(node *document.Node) *Violation {
	return r.check(node)
}

// builtinRules binds the checkers to the engine's allow-lists.
func builtinRules(opts Options) map[string]Rule {
	radii := opts.Radii
	textFills := opts.TextFills
	backgroundFills := opts.BackgroundFills

	return map[string]Rule{
		RuleRadius: NewRule(RuleRadius,
			"Corner radii must come from the radius allow-list",
			func(n *document.Node) *Violation { return CheckRadius(n, radii) }),
		RuleEffects: NewRule(RuleEffects,
			"Shadows and blurs must use an effect style",
			CheckEffects),
		RuleFill: NewRule(RuleFill,
			"Fills must use a fill style (image fills are exempt)",
			CheckFills),
		RuleStroke: NewRule(RuleStroke,
			"Strokes must use a stroke style",
			CheckStrokes),
		RuleText: NewRule(RuleText,
			"Text must use a text style",
			CheckText),
		RuleTextColorMisuse: NewRule(RuleTextColorMisuse,
			"Backgrounds must not use text color styles",
			func(n *document.Node) *Violation { return CheckBackgroundsForTextFills(n, textFills) }),
		RuleBackgroundColorMisuse: NewRule(RuleBackgroundColorMisuse,
			"Text must not use background color styles",
			func(n *document.Node) *Violation { return CheckTextForBackgroundFills(n, backgroundFills) }),
	}
}
