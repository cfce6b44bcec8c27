package sketchlang

import (
	"fmt"
	"strings"
)

// Renderer turns primitive shapes into target markup.
type Renderer interface {
	Render(shapes []Shape) string
}

// TikzRenderer emits a tikzpicture block, one line per shape.
type TikzRenderer struct{}

func (TikzRenderer) Render(shapes []Shape) string {
	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}\n")
	for _, s := range shapes {
		b.WriteString("\t")
		b.WriteString(tikzify(s))
		b.WriteString("\n")
	}
	b.WriteString("\\end{tikzpicture}")
	return b.String()
}

func tikzify(s Shape) string {
	switch s.Kind {
	case ShapePoint:
		return fmt.Sprintf("\\node[] at %s {}", s.At)
	case ShapeLine:
		return fmt.Sprintf("\\draw %s -- %s;", s.At, s.To)
	case ShapeCircle:
		return fmt.Sprintf("\\draw %s circle (%s);", s.At, formatFloat(s.Radius))
	}
	return ""
}

// SVGRenderer emits a standalone svg document of the given size.
type SVGRenderer struct {
	Width, Height float64
}

func (r SVGRenderer) Render(shapes []Shape) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\">\n",
		formatFloat(r.Width), formatFloat(r.Height))
	for _, s := range shapes {
		b.WriteString("  ")
		b.WriteString(svgShape(s))
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}

func svgShape(s Shape) string {
	switch s.Kind {
	case ShapePoint:
		x, y := planeXY(s.At)
		return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"1\" fill=\"black\"/>",
			formatFloat(x), formatFloat(y))
	case ShapeLine:
		x1, y1 := planeXY(s.At)
		x2, y2 := planeXY(s.To)
		return fmt.Sprintf("<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"black\"/>",
			formatFloat(x1), formatFloat(y1), formatFloat(x2), formatFloat(y2))
	case ShapeCircle:
		x, y := planeXY(s.At)
		return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"black\"/>",
			formatFloat(x), formatFloat(y), formatFloat(s.Radius))
	}
	return ""
}

func planeXY(c Coordinates) (float64, float64) {
	x, _ := c.Get(0)
	y, _ := c.Get(1)
	return x, y
}
