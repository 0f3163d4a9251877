package report

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/designlint/pkg/buildinfo"
	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/pipeline"
)

const sarifSchema = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations"`
	Results     []sarifResult     `json:"results"`
	Properties  map[string]string `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifInvocation struct {
	ExecutionSuccessful bool                `json:"executionSuccessful"`
	Notifications       []sarifNotification `json:"toolExecutionNotifications,omitempty"`
}

type sarifNotification struct {
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation *sarifPhysical `json:"physicalLocation,omitempty"`
	LogicalLocations []sarifLogical `json:"logicalLocations,omitempty"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifLogical struct {
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName"`
	Kind               string `json:"kind"`
}

var ruleDescriptions = map[string]string{
	lint.TypeRadius:  "Corner radius is not in the radius allow-list",
	lint.TypeEffects: "Effect applied without an effect style",
	lint.TypeFill:    "Fill missing a fill style or using a style reserved for other layers",
	lint.TypeStroke:  "Stroke applied without a stroke style",
	lint.TypeText:    "Text without a text style",
}

// reportSARIF writes one SARIF run. Violation types become rules; nodes
// become logical locations inside the document artifact.
func (r *Reporter) reportSARIF(result *pipeline.Result) error {
	rules := make([]sarifRule, 0, len(lint.Types))
	for _, typ := range lint.Types {
		rules = append(rules, sarifRule{
			ID:               typ,
			Name:             typ,
			ShortDescription: sarifMessage{Text: ruleDescriptions[typ]},
		})
	}

	results := []sarifResult{}
	invocation := sarifInvocation{ExecutionSuccessful: true}
	for i := range result.Documents {
		doc := &result.Documents[i]
		artifact := &sarifPhysical{ArtifactLocation: sarifArtifact{URI: doc.Source}}
		if doc.Failed() {
			invocation.ExecutionSuccessful = false
			invocation.Notifications = append(invocation.Notifications, sarifNotification{
				Level:     "error",
				Message:   sarifMessage{Text: doc.Err.Error()},
				Locations: []sarifLocation{{PhysicalLocation: artifact}},
			})
			continue
		}
		for _, v := range doc.Violations {
			results = append(results, sarifResult{
				RuleID:  v.Type,
				Level:   "warning",
				Message: sarifMessage{Text: violationText(v)},
				Locations: []sarifLocation{{
					PhysicalLocation: artifact,
					LogicalLocations: nodeLocation(v),
				}},
			})
		}
	}

	log := sarifLog{
		Version: "2.1.0",
		Schema:  sarifSchema,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           "designlint",
				Version:        buildinfo.Get().Version,
				InformationURI: buildinfo.InformationURI,
				Rules:          rules,
			}},
			Invocations: []sarifInvocation{invocation},
			Results:     results,
			Properties:  map[string]string{"runId": result.ID},
		}},
	}

	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF output: %w", err)
	}
	return nil
}

func violationText(v lint.Violation) string {
	if v.Value == "" {
		return v.Message
	}
	return v.Message + ": " + v.Value
}

func nodeLocation(v lint.Violation) []sarifLogical {
	if v.Node == nil {
		return nil
	}
	return []sarifLogical{{
		Name:               v.Node.Name,
		FullyQualifiedName: v.Node.ID,
		Kind:               "element",
	}}
}
