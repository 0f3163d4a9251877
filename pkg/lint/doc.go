// Package lint checks design document nodes against a design system's
// approved styles.
//
// Each checker inspects one property of one node (corner radius, effects,
// fills, strokes, typography) and returns at most one [Violation]. Checkers
// are pure: they never mutate the node and never report more than one
// problem per call. A nil *Violation means the node passed.
//
// # Checkers
//
//   - [CheckRadius]: corner radii against an allow-list; zero is always allowed
//   - [CheckEffects]: shadows and blurs without an effect style
//   - [CheckFills]: fills without a fill style (image fills are exempt)
//   - [CheckStrokes]: strokes without a stroke style
//   - [CheckText]: text without a text style
//   - [CheckFillMisuse]: fills using a style key from a forbidden [StyleSet]
//
// # Engine
//
// [Engine] wraps the checkers as named [Rule] values, dispatches them by
// node type and walks whole documents:
//
//	eng, err := lint.NewEngine(lint.Options{Radii: []float64{0, 4, 8}})
//	if err != nil {
//	    return err
//	}
//	report := eng.LintDocument(doc)
//	for _, v := range report.Violations {
//	    fmt.Println(v.Node, v.Message, v.Value)
//	}
package lint
