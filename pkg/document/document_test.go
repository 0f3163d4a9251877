package document

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/matzehuels/designlint/pkg/color"
	"github.com/matzehuels/designlint/pkg/errors"
)

const sampleExport = `{
  "name": "Home",
  "document": {
    "id": "0:1",
    "name": "Page 1",
    "type": "CANVAS",
    "children": [
      {
        "id": "1:2",
        "name": "Card",
        "type": "FRAME",
        "visible": true,
        "fills": [
          {"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}, "visible": true},
          {"type": "IMAGE", "imageHash": "abc123"}
        ],
        "strokes": [
          {"type": "GRADIENT_LINEAR", "gradientStops": [
            {"color": {"r": 0, "g": 0, "b": 0, "a": 1}, "position": 0},
            {"color": {"r": 1, "g": 1, "b": 1, "a": 1}, "position": 1}
          ]}
        ],
        "strokeWeight": 1,
        "strokeAlign": "INSIDE",
        "effects": [
          {"type": "DROP_SHADOW", "radius": 4, "color": {"r": 0, "g": 0, "b": 0, "a": 0.25}, "offset": {"x": 0, "y": 2}},
          {"type": "LAYER_BLUR", "radius": 8, "color": {"r": 1, "g": 1, "b": 1, "a": 0.5}},
          {"type": "SOMETHING_NEW", "radius": 2}
        ],
        "fillStyleId": "",
        "cornerRadius": "mixed",
        "topLeftRadius": 4,
        "topRightRadius": 8,
        "bottomLeftRadius": 0,
        "bottomRightRadius": 2,
        "children": [
          {
            "id": "1:3",
            "name": "Title",
            "type": "TEXT",
            "visible": false,
            "fontName": {"family": "Inter", "style": "Bold"},
            "fontSize": 16,
            "lineHeight": {"unit": "AUTO"},
            "textStyleId": ""
          },
          {
            "id": "1:4",
            "name": "Body",
            "type": "TEXT",
            "fontName": {"family": "Inter", "style": "Regular"},
            "fontSize": 14,
            "lineHeight": {"unit": "PIXELS", "value": 20}
          }
        ]
      }
    ]
  }
}`

func TestParseWrapped(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.Name != "Home" {
		t.Errorf("Name = %q, want %q", doc.Name, "Home")
	}
	if doc.Root.Type != NodeCanvas {
		t.Errorf("Root.Type = %v, want %v", doc.Root.Type, NodeCanvas)
	}
	if got := Count(doc.Root); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}

	card := Find(doc.Root, "1:2")
	if card == nil {
		t.Fatal("Find(1:2) returned nil")
	}

	solid, ok := card.Fills[0].(Solid)
	if !ok {
		t.Fatalf("Fills[0] = %T, want Solid", card.Fills[0])
	}
	if solid.Color != (color.RGBA{R: 1}) || !solid.Visible {
		t.Errorf("Fills[0] = %+v", solid)
	}

	img, ok := card.Fills[1].(Image)
	if !ok {
		t.Fatalf("Fills[1] = %T, want Image", card.Fills[1])
	}
	if img.Hash != "abc123" || !img.Visible {
		t.Errorf("image paint without visible flag should default to visible: %+v", img)
	}

	grad, ok := card.Strokes[0].(Gradient)
	if !ok {
		t.Fatalf("Strokes[0] = %T, want Gradient", card.Strokes[0])
	}
	if grad.Kind() != PaintGradientLinear || len(grad.Stops) != 2 {
		t.Errorf("gradient = %+v", grad)
	}

	if len(card.Effects) != 3 {
		t.Fatalf("len(Effects) = %d, want 3", len(card.Effects))
	}
	shadow, ok := card.Effects[0].(Shadow)
	if !ok {
		t.Fatalf("Effects[0] = %T, want Shadow", card.Effects[0])
	}
	if shadow.Offset.Y != 2 || shadow.Radius != 4 || shadow.Color == nil || shadow.Color.A != 0.25 {
		t.Errorf("shadow = %+v", shadow)
	}
	if card.Effects[1].Kind() != EffectLayerBlur {
		t.Errorf("Effects[1].Kind() = %v, want %v", card.Effects[1].Kind(), EffectLayerBlur)
	}
	if card.Effects[2].Kind() != EffectBackgroundBlur {
		t.Errorf("unknown effect should decode as background blur, got %v", card.Effects[2].Kind())
	}
	if blur, ok := card.Effects[1].(Blur); !ok || blur.Color == nil || blur.Color.A != 0.5 {
		t.Errorf("blur color should be kept when present: %+v", card.Effects[1])
	}
	if bg, ok := card.Effects[2].(Blur); !ok || bg.Color != nil {
		t.Errorf("blur without color should have nil Color: %+v", card.Effects[2])
	}

	if card.CornerRadius == nil || !card.CornerRadius.Mixed {
		t.Errorf("CornerRadius = %+v, want mixed", card.CornerRadius)
	}
	if card.TopRightRadius != 8 {
		t.Errorf("TopRightRadius = %v, want 8", card.TopRightRadius)
	}

	title := Find(doc.Root, "1:3")
	if title.Visible {
		t.Error("explicit visible=false should be kept")
	}
	if !title.LineHeight.IsAuto() {
		t.Errorf("LineHeight = %+v, want auto", title.LineHeight)
	}

	body := Find(doc.Root, "1:4")
	if !body.Visible {
		t.Error("absent visible flag should decode as true")
	}
	if body.LineHeight.IsAuto() || body.LineHeight.Value != 20 {
		t.Errorf("LineHeight = %+v, want 20px", body.LineHeight)
	}
	if body.CornerRadius != nil {
		t.Errorf("text node CornerRadius = %+v, want nil", body.CornerRadius)
	}
}

func TestParseBareNode(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"id": "2:1", "name": "Button", "type": "RECTANGLE", "cornerRadius": 6}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.Name != "Button" {
		t.Errorf("Name = %q, want %q", doc.Name, "Button")
	}
	if doc.Root.CornerRadius == nil || doc.Root.CornerRadius.Mixed || doc.Root.CornerRadius.Value != 6 {
		t.Errorf("CornerRadius = %+v, want uniform 6", doc.Root.CornerRadius)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty", "  ", errors.ErrCodeInvalidDocument},
		{"not json", "<svg/>", errors.ErrCodeInvalidDocument},
		{"no type", `{"id": "1:1"}`, errors.ErrCodeInvalidDocument},
		{"bad radius", `{"id": "1:1", "type": "FRAME", "cornerRadius": "round"}`, errors.ErrCodeInvalidDocument},
		{"solid without color", `{"id": "1:1", "type": "FRAME", "fills": [{"type": "SOLID"}]}`, errors.ErrCodeInvalidDocument},
		{"unknown paint", `{"id": "1:1", "type": "FRAME", "fills": [{"type": "HOLOGRAM"}]}`, errors.ErrCodeInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLineHeightNumber(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"id": "1", "type": "TEXT", "lineHeight": 24}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.Root.LineHeight.Unit != LineHeightPixels || doc.Root.LineHeight.Value != 24 {
		t.Errorf("LineHeight = %+v, want 24 PIXELS", doc.Root.LineHeight)
	}
}

func TestLoad(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "exports/home.json", []byte(sampleExport), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := Load(fs, "exports/home.json")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if doc.Name != "Home" {
		t.Errorf("Name = %q, want %q", doc.Name, "Home")
	}

	_, err = Load(fs, "exports/missing.json")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}

	_, err = Load(fs, "")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load(\"\") code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	root := &Node{ID: "root", Children: []*Node{
		{ID: "a", Children: []*Node{{ID: "a1"}}},
		{ID: "b"},
	}}

	var visited []string
	Walk(root, func(n *Node) bool {
		visited = append(visited, n.ID)
		return n.ID != "a"
	})

	want := []string{"root", "a", "b"}
	if strings.Join(visited, ",") != strings.Join(want, ",") {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}
