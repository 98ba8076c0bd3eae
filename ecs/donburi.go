package ecs

import (
	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType carries every dnd drag event.
var DragEventType = events.NewEventType[dnd.DragEvent]()

// Per-transition event types, for systems that only care about one kind of
// transition. Each event is published to DragEventType and to the matching
// type below.
var (
	BeginDragEventType = events.NewEventType[dnd.DragEvent]()
	EnterEventType     = events.NewEventType[dnd.DragEvent]()
	LeaveEventType     = events.NewEventType[dnd.DragEvent]()
	DropEventType      = events.NewEventType[dnd.DragEvent]()
	EndDragEventType   = events.NewEventType[dnd.DragEvent]()
)

// EventTypeFor returns the Donburi event type for t, or nil for an unknown
// transition.
func EventTypeFor(t dnd.EventType) *events.EventType[dnd.DragEvent] {
	switch t {
	case dnd.EventBeginDrag:
		return BeginDragEventType
	case dnd.EventEnter:
		return EnterEventType
	case dnd.EventLeave:
		return LeaveEventType
	case dnd.EventDrop:
		return DropEventType
	case dnd.EventEndDrag:
		return EndDragEventType
	}
	return nil
}

type donburiSink struct {
	world donburi.World
	// Drop events whose target returned nil are not forwarded when set.
	skipEmptyDrops bool
}

// SinkOption configures a Donburi sink.
type SinkOption func(*donburiSink)

// SkipEmptyDrops stops drop events without a result from reaching the world.
// Targets that declined the drop are usually of no interest to game systems.
func SkipEmptyDrops() SinkOption {
	return func(s *donburiSink) { s.skipEmptyDrops = true }
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued and delivered by events.ProcessAllEvents or the ProcessEvents method
// of the individual event types.
func NewDonburiSink(world donburi.World, opts ...SinkOption) dnd.EventSink {
	s := &donburiSink{world: world}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *donburiSink) EmitEvent(event dnd.DragEvent) {
	if s.skipEmptyDrops && event.Type == dnd.EventDrop && event.Result == nil {
		return
	}
	DragEventType.Publish(s.world, event)
	if et := EventTypeFor(event.Type); et != nil {
		et.Publish(s.world, event)
	}
}
