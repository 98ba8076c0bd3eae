package dnd

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugTraceOff(t *testing.T) {
	m := NewManager(Options{})
	var buf bytes.Buffer
	m.Store().SetDebugOutput(&buf)
	src, _ := m.Registry().RegisterSource("item", &stubSource{})

	s := m.Store()
	s.BeginDrag(src, nil, ev(0, 0))
	s.EndDrag()
	s.DebugLog()

	if buf.Len() != 0 {
		t.Errorf("unexpected output with debug off: %q", buf.String())
	}
}

func TestDebugTraceTransitions(t *testing.T) {
	m := NewManager(Options{Debug: true})
	var buf bytes.Buffer
	m.Store().SetDebugOutput(&buf)
	src, _ := m.Registry().RegisterSource("item", &stubSource{})
	other, _ := m.Registry().RegisterSource("item", &stubSource{})
	nestedTargets(m.Registry(), nil)

	s := m.Store()
	s.BeginDrag(src, nil, ev(0, 0))
	s.BeginDrag(other, nil, ev(0, 0))
	s.Move(ev(150, 150))
	s.Drop()
	s.EndDrag()

	out := buf.String()
	for _, want := range []string{
		`[dnd] begin DragSource(0) type="item"`,
		"[dnd] begin DragSource(1) ignored: DragSource(0) is already dragging",
		"[dnd] drop DragSource(0) on DropTarget(1)",
		"[dnd] end DragSource(0) didDrop=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugLogCounts(t *testing.T) {
	m := NewManager(Options{})
	m.SetDebug(true)
	var buf bytes.Buffer
	m.Store().SetDebugOutput(&buf)
	m.Registry().RegisterSource("item", &stubSource{})
	nestedTargets(m.Registry(), nil)
	NewDragLayer(m)

	m.Store().DebugLog()

	want := "[dnd] sources: 1 | targets: 2 | state subs: 1 | offset subs: 1 | dragging: false\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDebugPublishDepthWarning(t *testing.T) {
	m := NewManager(Options{Debug: true})
	var buf bytes.Buffer
	m.Store().SetDebugOutput(&buf)
	src, _ := m.Registry().RegisterSource("item", &stubSource{})
	s := m.Store()

	// Each offset publish triggers another move until the depth passes the
	// warning threshold.
	moves := 0
	s.SubscribeToOffsetChange(func() {
		if moves <= debugMaxPublishDepth {
			moves++
			s.Move(ev(float64(moves), 0))
		}
	}, nil)
	s.BeginDrag(src, nil, ev(0, 0))

	if !strings.Contains(buf.String(), "warning: publish depth") {
		t.Errorf("expected depth warning, got:\n%s", buf.String())
	}
}
