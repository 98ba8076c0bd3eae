package dnd

// Point is a 2D coordinate in client (screen) space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromEdges builds a Rect from left/top/right/bottom edges, the shape
// returned by most bounding-box APIs.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Element is the geometry handle of a source or target. The engine never
// measures anything itself; it asks the element for its current bounds each
// time it needs them.
type Element interface {
	Bounds() Rect
}

// ElementFunc adapts a plain function to Element.
type ElementFunc func() Rect

// Bounds calls f.
func (f ElementFunc) Bounds() Rect {
	return f()
}

// StaticElement is an Element with fixed bounds.
type StaticElement Rect

// Bounds returns the fixed rectangle.
func (e StaticElement) Bounds() Rect {
	return Rect(e)
}

// PointerEvent is the pointer position delivered by the input layer.
type PointerEvent struct {
	ClientX, ClientY float64
}

// Point returns the event position as a Point.
func (e PointerEvent) Point() Point {
	return Point{X: e.ClientX, Y: e.ClientY}
}
