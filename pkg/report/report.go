// Package report writes lint results as text, JSON or SARIF.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/pipeline"
)

// Format is an output format.
type Format int

const (
	// FormatText is one line per violation, grouped by document.
	FormatText Format = iota
	// FormatJSON is the full result as indented JSON.
	FormatJSON
	// FormatSARIF is SARIF 2.1.0 for code-scanning integrations.
	FormatSARIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (want text, json or sarif)", s)
	}
}

// Reporter writes results to a writer in one format.
type Reporter struct {
	writer io.Writer
	format Format
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report writes result.
func (r *Reporter) Report(result *pipeline.Result) error {
	switch r.format {
	case FormatText:
		return r.reportText(result)
	case FormatJSON:
		return r.reportJSON(result)
	case FormatSARIF:
		return r.reportSARIF(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportText writes "source: node: type: message (value)" lines.
func (r *Reporter) reportText(result *pipeline.Result) error {
	for i := range result.Documents {
		doc := &result.Documents[i]
		if doc.Failed() {
			if _, err := fmt.Fprintf(r.writer, "%s: error: %v\n", doc.Source, doc.Err); err != nil {
				return fmt.Errorf("write text output: %w", err)
			}
			continue
		}
		for _, v := range doc.Violations {
			line := fmt.Sprintf("%s: %s: %s: %s", doc.Source, v.Node, v.Type, v.Message)
			if v.Value != "" {
				line += " (" + v.Value + ")"
			}
			if _, err := fmt.Fprintln(r.writer, line); err != nil {
				return fmt.Errorf("write text output: %w", err)
			}
		}
	}
	_, err := fmt.Fprintf(r.writer, "%d violation(s) in %d document(s), %d node(s) checked\n",
		result.Stats.Violations, result.Stats.Documents, result.Stats.Nodes)
	return err
}

type jsonDocument struct {
	pipeline.DocumentResult
	Error string `json:"error,omitempty"`
}

// reportJSON writes the result with per-document error strings.
func (r *Reporter) reportJSON(result *pipeline.Result) error {
	docs := make([]jsonDocument, len(result.Documents))
	for i, d := range result.Documents {
		docs[i] = jsonDocument{DocumentResult: d}
		if d.Err != nil {
			docs[i].Error = d.Err.Error()
		}
	}
	out := struct {
		ID        string         `json:"id"`
		Documents []jsonDocument `json:"documents"`
		Stats     pipeline.Stats `json:"stats"`
	}{result.ID, docs, result.Stats}

	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}
