// Package document models the design document nodes that designlint inspects.
//
// A document is a tree of [Node] values as exported from a design tool's
// plugin API: frames, text layers, rectangles and other shapes. Each node
// carries its paint layers ([Paint]), visual effects ([Effect]), corner
// radii, typography and the identifiers of the named styles applied to it.
//
// # Sum Types
//
// Paint and Effect are closed sum types. A paint is exactly one of [Solid],
// [Image] or [Gradient]; an effect is either a [Shadow] or a [Blur]. Callers
// switch on the concrete type instead of reading a string tag:
//
//	switch p := node.Fills[0].(type) {
//	case document.Solid:
//	    fmt.Println(color.ToHex(p.Color))
//	case document.Image:
//	    fmt.Println("image", p.Hash)
//	case document.Gradient:
//	    fmt.Println(p.Kind, len(p.Stops))
//	}
//
// # Loading
//
// [Parse] decodes a JSON export from a reader and [Load] reads one from a
// go-billy filesystem. An export is either a wrapper object
// {"name": ..., "document": {node}} or a bare node.
//
// Nodes are read-only to the lint engine.
package document
