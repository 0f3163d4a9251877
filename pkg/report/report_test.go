package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/pipeline"
)

func sampleResult() *pipeline.Result {
	card := &document.Node{ID: "1:2", Name: "Card", Type: document.NodeFrame}
	title := &document.Node{ID: "1:3", Name: "Title", Type: document.NodeText}
	return &pipeline.Result{
		ID: "run-1",
		Documents: []pipeline.DocumentResult{
			{
				Source: "home.json",
				Name:   "Home",
				Violations: lint.Violations{
					*lint.NewViolation(card, lint.TypeRadius, "Incorrect border radius", "5"),
					*lint.NewViolation(title, lint.TypeText, "Missing text style"),
				},
				NodesChecked: 3,
			},
			{
				Source: "missing.json",
				Err:    errors.New(errors.ErrCodeFileNotFound, "document missing.json"),
			},
		},
		Stats: pipeline.Stats{Documents: 2, Failed: 1, Nodes: 3, Violations: 2},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"sarif", FormatSARIF, false},
		{"html", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("html"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(html) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestReportText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(sampleResult()); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	want := strings.Join([]string{
		"home.json: Card (1:2): radius: Incorrect border radius (5)",
		"home.json: Title (1:3): text: Missing text style",
		"missing.json: error: FILE_NOT_FOUND: document missing.json",
		"2 violation(s) in 2 document(s), 3 node(s) checked",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("text output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatJSON).Report(sampleResult()); err != nil {
		t.Fatalf("Report error: %v", err)
	}

	var out struct {
		ID        string `json:"id"`
		Documents []struct {
			Source     string `json:"source"`
			Error      string `json:"error"`
			Violations []struct {
				Node struct {
					ID string `json:"id"`
				} `json:"node"`
				Type  string `json:"type"`
				Value string `json:"value"`
			} `json:"violations"`
		} `json:"documents"`
		Stats struct {
			Violations int `json:"violations"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if out.ID != "run-1" || out.Stats.Violations != 2 {
		t.Errorf("id/stats = %q/%d", out.ID, out.Stats.Violations)
	}
	if len(out.Documents) != 2 || len(out.Documents[0].Violations) != 2 {
		t.Fatalf("documents = %+v", out.Documents)
	}
	if v := out.Documents[0].Violations[0]; v.Node.ID != "1:2" || v.Type != "radius" || v.Value != "5" {
		t.Errorf("violation = %+v", v)
	}
	if out.Documents[1].Error == "" {
		t.Error("failed document should carry an error string")
	}
}

func TestReportSARIF(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatSARIF).Report(sampleResult()); err != nil {
		t.Fatalf("Report error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("version/runs = %q/%d", log.Version, len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "designlint" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Tool.Driver.Rules) != len(lint.Types) {
		t.Errorf("rules = %d, want %d", len(run.Tool.Driver.Rules), len(lint.Types))
	}
	if len(run.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(run.Results))
	}
	r0 := run.Results[0]
	if r0.RuleID != "radius" || r0.Message.Text != "Incorrect border radius: 5" {
		t.Errorf("result = %+v", r0)
	}
	if got := r0.Locations[0].LogicalLocations[0].FullyQualifiedName; got != "1:2" {
		t.Errorf("logical location = %q, want 1:2", got)
	}
	if got := r0.Locations[0].PhysicalLocation.ArtifactLocation.URI; got != "home.json" {
		t.Errorf("artifact uri = %q, want home.json", got)
	}
	inv := run.Invocations[0]
	if inv.ExecutionSuccessful || len(inv.Notifications) != 1 {
		t.Errorf("invocation = %+v, want one failure notification", inv)
	}
}

func TestReportSARIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatSARIF).Report(&pipeline.Result{ID: "x"}); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if !strings.Contains(buf.String(), `"results": []`) {
		t.Errorf("empty run should emit an empty results array:\n%s", buf.String())
	}
}
