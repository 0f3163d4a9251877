// Package pkg provides the core libraries for designlint.
//
// # Overview
//
// designlint walks the node tree of a design-tool export and reports layers
// whose visual properties are not backed by a shared style, or that use a
// style reserved for a different kind of layer. The pkg directory is
// organized into these areas:
//
//  1. [document] - The export model: nodes, paints and effects
//  2. [lint] - Checkers, rules and the engine that dispatches them by node type
//  3. [config] - TOML/YAML configuration and discovery
//  4. [source], [cache], [httputil] - Loading exports from disk or over HTTP
//  5. [pipeline] - Concurrent load-and-lint over many documents
//  6. [report], [server] - Text/JSON/SARIF output and the HTTP API
//
// # Architecture
//
// The typical data flow through designlint:
//
//	File / URL
//	     ↓
//	[source] package (load, cache remote exports)
//	     ↓
//	[document] package (parse the node tree)
//	     ↓
//	[lint] package (run rules per node)
//	     ↓
//	[report] package (text, JSON or SARIF)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/designlint/pkg/document"
//	    "github.com/matzehuels/designlint/pkg/lint"
//	)
//
//	doc, _ := document.Parse(f)
//	engine, _ := lint.NewEngine(lint.Options{Radii: []float64{0, 4, 8}})
//	report := engine.LintDocument(doc)
//	for _, v := range report.Violations {
//	    fmt.Printf("%s: %s (%s)\n", v.Node, v.Message, v.Value)
//	}
package pkg
