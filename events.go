package dnd

// EventSink receives a copy of every drag transition. Set one on a Manager to
// forward the interaction into another system, for example an ECS world (see
// the dnd/ecs package).
type EventSink interface {
	EmitEvent(event DragEvent)
}

// EventType identifies the transition a DragEvent describes.
type EventType uint8

const (
	EventBeginDrag EventType = iota
	EventEnter
	EventLeave
	EventDrop
	EventEndDrag
)

var eventTypeNames = [...]string{
	EventBeginDrag: "begin",
	EventEnter:     "enter",
	EventLeave:     "leave",
	EventDrop:      "drop",
	EventEndDrag:   "end",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// DragEvent carries transition data for an EventSink.
type DragEvent struct {
	Type     EventType
	SourceID ID
	ItemType string
	ClientX  float64
	ClientY  float64
	// TargetID is set for EventEnter, EventLeave and EventDrop.
	TargetID ID
	// Result is the value returned by the target for EventDrop, and the final
	// drop result for EventEndDrag.
	Result  any
	DidDrop bool
}

func (s *Store) emit(op *operation, t EventType, target ID, result any) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(DragEvent{
		Type:     t,
		SourceID: op.sourceID,
		ItemType: op.itemType,
		ClientX:  op.offsets.ClientPointer.X,
		ClientY:  op.offsets.ClientPointer.Y,
		TargetID: target,
		Result:   result,
		DidDrop:  t == EventEndDrag && result != nil,
	})
}
