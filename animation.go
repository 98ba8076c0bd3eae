package dnd

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SnapBack animates a preview position from one point to another, typically
// from where a cancelled drag was released back to where the source started.
// Call Update(dt) each frame until it reports done.
type SnapBack struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	to     Point
	pos    Point
	Done   bool
}

// NewSnapBack creates a tween from from to to over duration seconds. A nil
// easing function defaults to ease.OutQuad.
func NewSnapBack(from, to Point, duration float32, fn ease.TweenFunc) *SnapBack {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &SnapBack{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, fn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, fn),
		to:     to,
		pos:    from,
	}
}

// Update advances the tween by dt seconds and returns the new position. Once
// finished the position is exactly the destination.
func (s *SnapBack) Update(dt float32) (Point, bool) {
	if s.Done {
		return s.pos, true
	}
	x, doneX := s.tweenX.Update(dt)
	y, doneY := s.tweenY.Update(dt)
	s.pos = Point{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		s.Done = true
		s.pos = s.to
	}
	return s.pos, s.Done
}

// Position returns the last computed position.
func (s *SnapBack) Position() Point {
	return s.pos
}
