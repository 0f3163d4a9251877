package lint

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/designlint/pkg/color"
	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	return e
}

func ruleNames(rules []Rule) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name()
	}
	return strings.Join(names, ",")
}

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unknown rule", Options{Disabled: []string{"colour"}}, errors.ErrCodeInvalidConfig},
		{"negative radius", Options{Radii: []float64{-1}}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("NewEngine error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestRulesFor(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		typ  document.NodeType
		want string
	}{
		{document.NodeText, "text,background-color-misuse,effects,stroke"},
		{document.NodeFrame, "text-color-misuse,effects,stroke,radius"},
		{document.NodeInstance, "text-color-misuse,effects,stroke,radius"},
		{document.NodeRectangle, "text-color-misuse,effects,stroke,radius"},
		{document.NodeEllipse, "fill,effects,stroke"},
		{document.NodeVector, "fill,effects,stroke"},
		{document.NodeGroup, ""},
		{document.NodeCanvas, ""},
	}
	for _, tt := range tests {
		if got := ruleNames(e.RulesFor(tt.typ)); got != tt.want {
			t.Errorf("RulesFor(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestRulesForDisabled(t *testing.T) {
	e := newTestEngine(t, Options{Disabled: []string{RuleTextColorMisuse, RuleEffects}})
	if got, want := ruleNames(e.RulesFor(document.NodeFrame)), "fill,stroke,radius"; got != want {
		t.Errorf("RulesFor(FRAME) = %q, want %q", got, want)
	}

	e = newTestEngine(t, Options{Disabled: []string{RuleTextColorMisuse, RuleFill}})
	if got, want := ruleNames(e.RulesFor(document.NodeFrame)), "effects,stroke,radius"; got != want {
		t.Errorf("RulesFor(FRAME) = %q, want %q", got, want)
	}
	if e.Enabled(RuleFill) {
		t.Error("Enabled(fill) = true, want false")
	}
	if !e.Enabled(RuleText) {
		t.Error("Enabled(text) = false, want true")
	}
}

func TestLintDocument(t *testing.T) {
	raw := document.Solid{Color: color.RGBA{R: 1}, Visible: true}
	doc := &document.Document{
		Name: "Home",
		Root: &document.Node{ID: "0:1", Type: document.NodeCanvas, Visible: true, Children: []*document.Node{
			{
				ID: "1:1", Name: "Card", Type: document.NodeFrame, Visible: true,
				Fills:        document.Paints{raw},
				FillStyleID:  "S:text-primary",
				CornerRadius: document.Uniform(5),
				Children: []*document.Node{
					{ID: "1:2", Name: "Title", Type: document.NodeText, Visible: true, FontSize: 16, TextStyleID: "S:title"},
					{ID: "1:3", Name: "Icon", Type: document.NodeEllipse, Visible: true, Fills: document.Paints{raw}},
				},
			},
			{ID: "2:1", Name: "Ignored", Type: document.NodeRectangle, Visible: true, Fills: document.Paints{raw}},
		}},
	}

	e := newTestEngine(t, Options{
		Radii:       []float64{4, 8},
		TextFills:   NewStyleSet("text-primary"),
		IgnoreNodes: []string{"2:1"},
	})
	report := e.LintDocument(doc)

	if report.NodesChecked != 5 {
		t.Errorf("NodesChecked = %d, want 5", report.NodesChecked)
	}

	want := []struct{ id, message string }{
		{"1:1", MsgTextColorUse},
		{"1:1", "Incorrect border radius"},
		{"1:3", "Missing fill style"},
	}
	if len(report.Violations) != len(want) {
		t.Fatalf("got %d violations, want %d: %+v", len(report.Violations), len(want), report.Violations)
	}
	for i, w := range want {
		v := report.Violations[i]
		if v.Node.ID != w.id || v.Message != w.message {
			t.Errorf("violation %d = %s %q, want %s %q", i, v.Node.ID, v.Message, w.id, w.message)
		}
	}
}

func TestLintDocumentNil(t *testing.T) {
	e := newTestEngine(t, Options{})
	if r := e.LintDocument(nil); r.NodesChecked != 0 || len(r.Violations) != 0 {
		t.Errorf("LintDocument(nil) = %+v, want empty", r)
	}
}

func TestViolationJSON(t *testing.T) {
	v := NewViolation(&document.Node{ID: "1:2", Name: "Card", Type: document.NodeFrame, Children: []*document.Node{{ID: "x"}}},
		TypeRadius, "Incorrect border radius", "5")
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"node":{"id":"1:2","name":"Card","type":"FRAME"},"type":"radius","message":"Incorrect border radius","value":"5"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
