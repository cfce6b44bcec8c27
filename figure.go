package sketchlang

import (
	"fmt"
	"math"
	"strings"
)

// Coordinates is an n-dimensional point.
type Coordinates struct {
	values []float64
}

func NewCoordinates(values ...float64) Coordinates {
	return Coordinates{values: append([]float64(nil), values...)}
}

func (c Coordinates) Dims() int { return len(c.values) }

// Get returns the i-th component, or false if out of range.
func (c Coordinates) Get(i int) (float64, bool) {
	if i < 0 || i >= len(c.values) {
		return 0, false
	}
	return c.values[i], true
}

func (c Coordinates) Scale(k float64) Coordinates {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = v * k
	}
	return Coordinates{values: out}
}

func (c Coordinates) Add(o Coordinates) (Coordinates, error) {
	if len(c.values) != len(o.values) {
		return Coordinates{}, &DimensionError{
			Msg: fmt.Sprintf("cannot add coordinate points of unequal dimensions (%d != %d)", len(c.values), len(o.values)),
		}
	}
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = v + o.values[i]
	}
	return Coordinates{values: out}, nil
}

func (c Coordinates) Sub(o Coordinates) (Coordinates, error) {
	if len(c.values) != len(o.values) {
		return Coordinates{}, &DimensionError{
			Msg: fmt.Sprintf("cannot subtract coordinate points of unequal dimensions (%d != %d)", len(c.values), len(o.values)),
		}
	}
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = v - o.values[i]
	}
	return Coordinates{values: out}, nil
}

// Magnitude is the distance from the origin under the L2 norm.
func (c Coordinates) Magnitude() float64 {
	total := 0.0
	for _, v := range c.values {
		total += v * v
	}
	return math.Sqrt(total)
}

func (c Coordinates) Normalize() Coordinates {
	mag := c.Magnitude()
	if isZero(mag) {
		return c
	}
	return c.Scale(1 / mag)
}

func (c Coordinates) Equal(o Coordinates) (bool, error) {
	if len(c.values) != len(o.values) {
		return false, &DimensionError{
			Msg: fmt.Sprintf("cannot compare coordinate points of unequal dimensions (%d != %d)", len(c.values), len(o.values)),
		}
	}
	for i, v := range c.values {
		if !floatEq(v, o.values[i]) {
			return false, nil
		}
	}
	return true, nil
}

// String renders the display form "(x, y)".
func (c Coordinates) String() string {
	parts := make([]string, 0, len(c.values))
	for _, v := range c.values {
		parts = append(parts, formatFloat(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ShapeKind tags a primitive shape.
type ShapeKind int

const (
	ShapePoint ShapeKind = iota
	ShapeLine
	ShapeCircle
)

// Shape is the render-agnostic primitive handed to rendering backends.
type Shape struct {
	Kind   ShapeKind
	At     Coordinates
	To     Coordinates // lines only
	Radius float64     // circles only
}

// Drawable is the evaluator's output unit, consumed by a rendering
// backend through Draw and deduplicated through Repr.
type Drawable interface {
	// Draw lowers the object to primitive shapes.
	Draw() []Shape
	// Repr is the canonical string form of the object.
	Repr() string
	// Dims is the dimension of the space the object lives in.
	Dims() int
}

// Point is a single node with no contents.
type Point struct {
	at Coordinates
}

func NewPoint(at Coordinates) *Point { return &Point{at: at} }

func (p *Point) Draw() []Shape { return []Shape{{Kind: ShapePoint, At: p.at}} }

func (p *Point) Repr() string { return "point" + p.at.String() }

func (p *Point) Dims() int { return p.at.Dims() }

// Line is a straight segment between two points.
type Line struct {
	from, to Coordinates
}

func NewLine(from, to Coordinates) *Line { return &Line{from: from, to: to} }

func (l *Line) Draw() []Shape { return []Shape{{Kind: ShapeLine, At: l.from, To: l.to}} }

func (l *Line) Repr() string {
	return fmt.Sprintf("line(%s, %s)", l.from, l.to)
}

func (l *Line) Dims() int { return l.from.Dims() }

// Circle is a circle of a given radius around a center.
type Circle struct {
	center Coordinates
	radius float64
}

func NewCircle(center Coordinates, radius float64) *Circle {
	return &Circle{center: center, radius: radius}
}

func (c *Circle) Draw() []Shape {
	return []Shape{{Kind: ShapeCircle, At: c.center, Radius: c.radius}}
}

func (c *Circle) Repr() string {
	return fmt.Sprintf("circle(%s, %s)", c.center, formatFloat(c.radius))
}

func (c *Circle) Dims() int { return c.center.Dims() }

// Figure is the draw history: an ordered list of drawables with undo
// and redo. A drawable whose repr is already present is skipped.
type Figure struct {
	dims   int
	drawn  []Drawable
	undone []Drawable
}

func NewFigure(dims int) *Figure { return &Figure{dims: dims} }

func (f *Figure) Dims() int { return f.dims }

// Draw appends a drawable to the history. Drawing discards the redo
// stack, like any editor history.
func (f *Figure) Draw(d Drawable) error {
	if d.Dims() != f.dims {
		return &DimensionError{
			Msg: fmt.Sprintf("cannot draw a %d-dimensional object on a %d-dimensional figure", d.Dims(), f.dims),
		}
	}
	for _, existing := range f.drawn {
		if existing.Repr() == d.Repr() {
			return nil
		}
	}
	f.drawn = append(f.drawn, d)
	f.undone = nil
	return nil
}

// Undo removes the most recent drawable; it reports whether anything
// was undone.
func (f *Figure) Undo() bool {
	if len(f.drawn) == 0 {
		return false
	}
	last := f.drawn[len(f.drawn)-1]
	f.drawn = f.drawn[:len(f.drawn)-1]
	f.undone = append(f.undone, last)
	return true
}

// Redo restores the most recently undone drawable.
func (f *Figure) Redo() bool {
	if len(f.undone) == 0 {
		return false
	}
	last := f.undone[len(f.undone)-1]
	f.undone = f.undone[:len(f.undone)-1]
	f.drawn = append(f.drawn, last)
	return true
}

// Clear drops the whole history, including the redo stack.
func (f *Figure) Clear() {
	f.drawn = nil
	f.undone = nil
}

// Drawables returns the current draw list in order.
func (f *Figure) Drawables() []Drawable {
	return append([]Drawable(nil), f.drawn...)
}

// Render lowers every drawable to shapes and hands them to r. The
// rendering backends are two-dimensional.
func (f *Figure) Render(r Renderer) (string, error) {
	if f.dims != 2 {
		return "", &DimensionError{
			Msg: fmt.Sprintf("cannot render a %d-dimensional figure to a 2-dimensional target", f.dims),
		}
	}
	var shapes []Shape
	for _, d := range f.drawn {
		shapes = append(shapes, d.Draw()...)
	}
	return r.Render(shapes), nil
}
