package sketchlang

import (
	"strings"
	"testing"
)

func TestTikzShapes(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{
			Shape{Kind: ShapePoint, At: NewCoordinates(2, 3)},
			"\\node[] at (2, 3) {}",
		},
		{
			Shape{Kind: ShapeLine, At: NewCoordinates(0, 0), To: NewCoordinates(3, 4)},
			"\\draw (0, 0) -- (3, 4);",
		},
		{
			Shape{Kind: ShapeCircle, At: NewCoordinates(1, 2), Radius: 2.5},
			"\\draw (1, 2) circle (2.5);",
		},
	}
	for _, tt := range tests {
		if got := tikzify(tt.shape); got != tt.want {
			t.Errorf("tikzify = %q, want %q", got, tt.want)
		}
	}
}

func TestTikzDocument(t *testing.T) {
	out := TikzRenderer{}.Render(nil)
	if out != "\\begin{tikzpicture}\n\\end{tikzpicture}" {
		t.Errorf("empty document = %q", out)
	}
}

func TestSVGShapes(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{
			Shape{Kind: ShapePoint, At: NewCoordinates(2, 3)},
			`<circle cx="2" cy="3" r="1" fill="black"/>`,
		},
		{
			Shape{Kind: ShapeLine, At: NewCoordinates(0, 0), To: NewCoordinates(3, 4)},
			`<line x1="0" y1="0" x2="3" y2="4" stroke="black"/>`,
		},
		{
			Shape{Kind: ShapeCircle, At: NewCoordinates(1, 2), Radius: 2.5},
			`<circle cx="1" cy="2" r="2.5" fill="none" stroke="black"/>`,
		},
	}
	for _, tt := range tests {
		if got := svgShape(tt.shape); got != tt.want {
			t.Errorf("svgShape = %q, want %q", got, tt.want)
		}
	}
}

func TestSVGDocument(t *testing.T) {
	r := SVGRenderer{Width: 100, Height: 50}
	out := r.Render([]Shape{{Kind: ShapePoint, At: NewCoordinates(2, 3)}})
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50">`) {
		t.Errorf("missing svg header: %q", out)
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Errorf("missing closing tag: %q", out)
	}
	if !strings.Contains(out, `<circle cx="2" cy="3"`) {
		t.Errorf("missing shape: %q", out)
	}
}
