// Package pipeline loads and lints a batch of documents.
//
// The CLI and the HTTP server both go through a [Runner], so that loading,
// concurrency, logging and observability behave the same at every entry
// point.
//
// # Usage
//
//	runner := pipeline.NewRunner(engine, resolver, logger)
//	result, err := runner.Run(ctx, []string{"home.json", "https://example.com/checkout.json"}, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, doc := range result.Documents {
//	    fmt.Println(doc.Source, len(doc.Violations))
//	}
package pipeline

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/lint"
)

// DefaultConcurrency is the number of documents loaded and linted at once.
const DefaultConcurrency = 4

// Options configures a run.
type Options struct {
	// Concurrency bounds parallel document work. Zero means DefaultConcurrency.
	Concurrency int

	// Refresh bypasses cached remote documents.
	Refresh bool

	// FailFast aborts the run on the first document that cannot be loaded.
	// Otherwise failures are recorded per document and the run continues.
	FailFast bool
}

// SetDefaults fills zero values.
func (o *Options) SetDefaults() {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
}

// DocumentResult is the outcome for one source.
type DocumentResult struct {
	Source       string             `json:"source"`
	Name         string             `json:"name"`
	Violations   lint.Violations    `json:"violations"`
	NodesChecked int                `json:"nodes_checked"`
	Duration     time.Duration      `json:"duration_ns"`
	Document     *document.Document `json:"-"`
	Err          error              `json:"-"`
}

// Failed reports whether the source could not be loaded.
func (d *DocumentResult) Failed() bool {
	return d.Err != nil
}

// Stats aggregates a run.
type Stats struct {
	Documents  int            `json:"documents"`
	Failed     int            `json:"failed"`
	Nodes      int            `json:"nodes"`
	Violations int            `json:"violations"`
	ByType     map[string]int `json:"by_type"`
	Duration   time.Duration  `json:"duration_ns"`
}

// Result holds every document result in input order.
type Result struct {
	ID        string           `json:"id"`
	Documents []DocumentResult `json:"documents"`
	Stats     Stats            `json:"stats"`
}

// HasViolations reports whether any document has a violation.
func (r *Result) HasViolations() bool {
	return r.Stats.Violations > 0
}

// Err joins the load errors of failed documents, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for i := range r.Documents {
		if d := &r.Documents[i]; d.Failed() {
			errs = append(errs, fmt.Errorf("%s: %w", d.Source, d.Err))
		}
	}
	return stderrors.Join(errs...)
}

func (r *Result) tally() {
	r.Stats.Documents = len(r.Documents)
	r.Stats.ByType = make(map[string]int)
	for i := range r.Documents {
		d := &r.Documents[i]
		if d.Failed() {
			r.Stats.Failed++
			continue
		}
		r.Stats.Nodes += d.NodesChecked
		r.Stats.Violations += len(d.Violations)
		for typ, n := range d.Violations.ByType() {
			r.Stats.ByType[typ] += n
		}
	}
}
