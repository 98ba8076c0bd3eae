package dnd

import (
	"io"
	"os"
)

// Offsets holds the pointer and source geometry of the current operation.
// PointerToSourceDiff is fixed at BeginDrag; on every Move
// ClientSource = ClientPointer - PointerToSourceDiff.
type Offsets struct {
	ClientPointer        Point
	ClientSource         Point
	InitialClientPointer Point
	InitialClientSource  Point
	PointerToSourceDiff  Point
}

// operation is the single in-progress drag. Only the Store mutates it.
type operation struct {
	sourceID   ID
	itemType   string
	item       any
	targetIDs  []ID // front = most recently entered
	offsets    Offsets
	dropResult any
}

// Store owns the current drag operation and notifies subscribers of changes.
// It is Idle when no operation exists and Dragging otherwise. Every
// transition except BeginDrag is a silent no-op while Idle, so observers can
// call them without checking IsDragging first.
//
// A Store is single-threaded: all transitions and notifications run
// synchronously on the caller's goroutine and it must not be shared between
// goroutines.
type Store struct {
	registry *Registry
	op       *operation
	subs     subscriptionRegistry
	policy   DropPolicy
	sink     EventSink

	// Transition bookkeeping.
	queued  bool
	queue   transitionQueue
	running int

	// Diagnostics.
	debug        bool
	debugOut     io.Writer
	publishDepth int
}

// NewStore creates an idle store that resolves ids through registry.
func NewStore(registry *Registry, opts Options) *Store {
	return &Store{
		registry: registry,
		policy:   opts.DropPolicy,
		queued:   opts.QueueTransitions,
		debug:    opts.Debug,
		debugOut: os.Stderr,
	}
}

// Registry returns the registry the store resolves ids against.
func (s *Store) Registry() *Registry {
	return s.registry
}

// --- Subscriptions ---

// SubscribeToStateChange registers listener on the state channel. A nil
// shouldNotify accepts every publish.
func (s *Store) SubscribeToStateChange(listener Listener, shouldNotify ShouldNotify) Unsubscribe {
	return s.subs.subscribe(ChannelState, listener, shouldNotify)
}

// SubscribeToOffsetChange registers listener on the offset channel. A nil
// shouldNotify accepts every publish.
func (s *Store) SubscribeToOffsetChange(listener Listener, shouldNotify ShouldNotify) Unsubscribe {
	return s.subs.subscribe(ChannelOffset, listener, shouldNotify)
}

func (s *Store) publish(c Channel, dirty Dirty) {
	s.publishDepth++
	s.debugCheckPublishDepth()
	defer func() { s.publishDepth-- }()
	s.subs.publish(c, dirty)
}

// --- Transition plumbing ---

// run executes a transition. Without queueing a nested transition simply runs
// inside the outer one, like a call stack. With queueing it is deferred until
// the outermost transition has finished.
func (s *Store) run(fn func()) {
	if s.queued && s.running > 0 {
		s.queue.push(fn)
		return
	}
	s.exec(fn)
	if !s.queued || s.running > 0 {
		return
	}
	for {
		next, ok := s.queue.pop()
		if !ok {
			return
		}
		s.exec(next)
	}
}

func (s *Store) exec(fn func()) {
	s.running++
	defer func() { s.running-- }()
	fn()
}

// --- Transitions ---

// BeginDrag starts an operation for sourceID carrying item. It is ignored if
// an operation already exists or the source is not registered.
func (s *Store) BeginDrag(sourceID ID, item any, ev PointerEvent) {
	s.run(func() { s.beginDrag(sourceID, item, ev) })
}

func (s *Store) beginDrag(sourceID ID, item any, ev PointerEvent) {
	if s.op != nil {
		s.debugf("begin %s ignored: %s is already dragging", sourceID, s.op.sourceID)
		return
	}
	src, ok := s.registry.Source(sourceID)
	if !ok {
		s.debugf("begin ignored: unknown source %s", sourceID)
		return
	}
	itemType, _ := s.registry.ItemType(sourceID)

	pointer := ev.Point()
	origin := pointer
	if el := src.Element(); validElement(el) {
		origin = el.Bounds().Min()
	}

	op := &operation{
		sourceID: sourceID,
		itemType: itemType,
		item:     item,
		offsets: Offsets{
			ClientPointer:        pointer,
			ClientSource:         origin,
			InitialClientPointer: pointer,
			InitialClientSource:  origin,
			PointerToSourceDiff:  pointer.Sub(origin),
		},
	}
	s.op = op
	s.debugf("begin %s type=%q at (%g, %g)", sourceID, itemType, pointer.X, pointer.Y)

	dirty := Dirty{Sources: []ID{sourceID}}
	s.publish(ChannelOffset, dirty)
	s.publish(ChannelState, dirty)

	s.emit(op, EventBeginDrag, "", nil)
}

// Move updates the pointer position, recomputes which targets the pointer is
// over, notifies subscribers, and then runs the leave, enter and hover hooks
// of the affected targets.
func (s *Store) Move(ev PointerEvent) {
	s.run(func() { s.move(ev) })
}

func (s *Store) move(ev PointerEvent) {
	op := s.op
	if op == nil {
		return
	}

	pointer := ev.Point()
	op.offsets.ClientPointer = pointer
	op.offsets.ClientSource = pointer.Sub(op.offsets.PointerToSourceDiff)

	prev := op.targetIDs
	contained := s.hitTest(pointer, op.itemType)

	var entered, exited []ID
	for _, id := range contained {
		if !containsID(prev, id) {
			entered = append(entered, id)
		}
	}
	next := make([]ID, 0, len(contained))
	// Newly entered targets go in front. Within one move the later-registered
	// target is treated as the inner one.
	for i := len(entered) - 1; i >= 0; i-- {
		next = append(next, entered[i])
	}
	for _, id := range prev {
		if containsID(contained, id) {
			next = append(next, id)
		} else {
			exited = append(exited, id)
		}
	}
	op.targetIDs = next

	dirty := Dirty{Sources: []ID{op.sourceID}, Targets: unionIDs(next, prev)}
	s.publish(ChannelOffset, dirty)
	if s.op != op {
		return
	}
	s.publish(ChannelState, dirty)

	for _, id := range exited {
		if s.op != op {
			return
		}
		if tgt, ok := s.registry.Target(id); ok {
			tgt.Leave()
		}
		s.emit(op, EventLeave, id, nil)
	}
	for _, id := range entered {
		if s.op != op {
			return
		}
		if tgt, ok := s.registry.Target(id); ok {
			tgt.Enter()
		}
		s.emit(op, EventEnter, id, nil)
	}
	s.hover(op)
}

// hitTest returns, in registration order, every target whose item type
// matches and whose bounds contain p.
func (s *Store) hitTest(p Point, itemType string) []ID {
	var hits []ID
	for _, id := range s.registry.TargetIDs() {
		if t, ok := s.registry.ItemType(id); !ok || t != itemType {
			continue
		}
		tgt, ok := s.registry.Target(id)
		if !ok {
			continue
		}
		el := tgt.Element()
		if !validElement(el) {
			continue
		}
		if el.Bounds().ContainsPoint(p) {
			hits = append(hits, id)
		}
	}
	return hits
}

// Hover calls the hover hook of every current target, front to back.
func (s *Store) Hover() {
	s.run(func() {
		if s.op != nil {
			s.hover(s.op)
		}
	})
}

func (s *Store) hover(op *operation) {
	ids := append([]ID(nil), op.targetIDs...)
	for _, id := range ids {
		if s.op != op {
			return
		}
		if tgt, ok := s.registry.Target(id); ok {
			tgt.Hover()
		}
	}
}

// Enter marks targetID as entered by the pointer. It is meant for input
// layers that detect overlap themselves instead of relying on Move's hit
// test. Unknown targets, item type mismatches and already entered targets are
// ignored.
func (s *Store) Enter(targetID ID) {
	s.run(func() { s.enter(targetID) })
}

func (s *Store) enter(targetID ID) {
	op := s.op
	if op == nil || containsID(op.targetIDs, targetID) {
		return
	}
	if t, ok := s.registry.ItemType(targetID); !ok || t != op.itemType {
		return
	}
	tgt, ok := s.registry.Target(targetID)
	if !ok {
		return
	}
	tgt.Enter()
	if s.op != op || containsID(op.targetIDs, targetID) {
		return
	}

	op.targetIDs = append([]ID{targetID}, op.targetIDs...)
	dirty := Dirty{Sources: []ID{op.sourceID}, Targets: append([]ID(nil), op.targetIDs...)}
	s.publish(ChannelState, dirty)
	s.emit(op, EventEnter, targetID, nil)
}

// Leave removes targetID from the hovered targets. See Enter.
func (s *Store) Leave(targetID ID) {
	s.run(func() { s.leave(targetID) })
}

func (s *Store) leave(targetID ID) {
	op := s.op
	if op == nil || !containsID(op.targetIDs, targetID) {
		return
	}
	if tgt, ok := s.registry.Target(targetID); ok {
		tgt.Leave()
	}
	if s.op != op || !containsID(op.targetIDs, targetID) {
		return
	}

	dirty := Dirty{Sources: []ID{op.sourceID}, Targets: append([]ID(nil), op.targetIDs...)}
	op.targetIDs = withoutID(op.targetIDs, targetID)
	s.publish(ChannelState, dirty)
	s.emit(op, EventLeave, targetID, nil)
}

// Drop asks the hovered targets, front to back, for a drop result. Targets
// whose CanDrop is false are skipped. How several results combine depends on
// the store's DropPolicy.
func (s *Store) Drop() {
	s.run(s.drop)
}

func (s *Store) drop() {
	op := s.op
	if op == nil {
		return
	}

	ids := s.liveTargetIDs(op)
	for _, id := range ids {
		tgt, ok := s.registry.Target(id)
		if !ok || !tgt.CanDrop() {
			continue
		}
		result := tgt.Drop()
		if s.op != op {
			return
		}
		s.emit(op, EventDrop, id, result)
		if result == nil {
			continue
		}
		op.dropResult = result
		s.debugf("drop %s on %s", op.sourceID, id)
		if s.policy == DropFirstWins {
			break
		}
	}

	dirty := Dirty{Sources: []ID{op.sourceID}, Targets: ids}
	s.publish(ChannelState, dirty)
}

// EndDrag discards the operation, drop result included, and then notifies
// every source and target that took part so they observe the idle state.
func (s *Store) EndDrag() {
	s.run(s.endDrag)
}

// finishDrag drops, runs hook and ends the operation inside one transition,
// so with queued transitions the hook still runs between the drop and the
// end and reads the drop result.
func (s *Store) finishDrag(hook func()) {
	s.run(func() {
		s.drop()
		if hook != nil {
			hook()
		}
		s.endDrag()
	})
}

func (s *Store) endDrag() {
	op := s.op
	if op == nil {
		return
	}
	dirty := Dirty{Sources: []ID{op.sourceID}, Targets: append([]ID(nil), op.targetIDs...)}
	s.op = nil
	s.debugf("end %s didDrop=%t", op.sourceID, op.dropResult != nil)

	s.publish(ChannelState, dirty)
	s.publish(ChannelOffset, dirty)

	s.emit(op, EventEndDrag, "", op.dropResult)
}

// --- Read accessors ---

// IsDragging reports whether an operation exists.
func (s *Store) IsDragging() bool {
	return s.op != nil
}

// IsSourceDragging reports whether the source registered as id considers
// itself dragged. Sources without an IsDragging override compare ids.
func (s *Store) IsSourceDragging(id ID) bool {
	if s.op == nil {
		return false
	}
	src, ok := s.registry.Source(id)
	if !ok {
		return false
	}
	return src.IsDragging(s, id)
}

// SourceID returns the dragged source, or "" when idle.
func (s *Store) SourceID() ID {
	if s.op == nil {
		return ""
	}
	return s.op.sourceID
}

// TargetIDs returns a copy of the hovered targets, innermost first, or nil
// when idle.
func (s *Store) TargetIDs() []ID {
	if s.op == nil {
		return nil
	}
	return append([]ID{}, s.liveTargetIDs(s.op)...)
}

// Item returns the payload produced by the source's BeginDrag.
func (s *Store) Item() any {
	if s.op == nil {
		return nil
	}
	return s.op.item
}

// ItemType returns the item type of the dragged source, or "" when idle.
func (s *Store) ItemType() string {
	if s.op == nil {
		return ""
	}
	return s.op.itemType
}

// Offsets returns all offsets of the current operation.
func (s *Store) Offsets() (Offsets, bool) {
	if s.op == nil {
		return Offsets{}, false
	}
	return s.op.offsets, true
}

// ClientOffset returns the current pointer position.
func (s *Store) ClientOffset() (Point, bool) {
	if s.op == nil {
		return Point{}, false
	}
	return s.op.offsets.ClientPointer, true
}

// SourceClientOffset returns the current top-left of the dragged source.
func (s *Store) SourceClientOffset() (Point, bool) {
	if s.op == nil {
		return Point{}, false
	}
	return s.op.offsets.ClientSource, true
}

// InitialClientOffset returns the pointer position at BeginDrag.
func (s *Store) InitialClientOffset() (Point, bool) {
	if s.op == nil {
		return Point{}, false
	}
	return s.op.offsets.InitialClientPointer, true
}

// InitialSourceClientOffset returns the source top-left at BeginDrag.
func (s *Store) InitialSourceClientOffset() (Point, bool) {
	if s.op == nil {
		return Point{}, false
	}
	return s.op.offsets.InitialClientSource, true
}

// SourceClientOffsetDiff returns the fixed pointer-to-source difference.
func (s *Store) SourceClientOffsetDiff() (Point, bool) {
	if s.op == nil {
		return Point{}, false
	}
	return s.op.offsets.PointerToSourceDiff, true
}

// DropResult returns the stored drop result, or nil.
func (s *Store) DropResult() any {
	if s.op == nil {
		return nil
	}
	return s.op.dropResult
}

// DidDrop reports whether a target produced a non-nil drop result.
func (s *Store) DidDrop() bool {
	return s.op != nil && s.op.dropResult != nil
}

// IsOverTarget reports whether id is hovered. With shallow set it is true
// only for the innermost (front) target.
func (s *Store) IsOverTarget(id ID, shallow bool) bool {
	if s.op == nil {
		return false
	}
	for i, v := range s.liveTargetIDs(s.op) {
		if v == id {
			return !shallow || i == 0
		}
	}
	return false
}

// CanDropOnTarget reports whether the dragged item may be dropped on id.
func (s *Store) CanDropOnTarget(id ID) bool {
	if s.op == nil {
		return false
	}
	itemType, ok := s.registry.ItemType(id)
	if !ok || itemType != s.op.itemType {
		return false
	}
	tgt, ok := s.registry.Target(id)
	if !ok {
		return false
	}
	return tgt.CanDrop()
}

// --- helpers ---

// liveTargetIDs returns the hovered targets that are still registered. A
// target unregistered mid-drag stays in the operation until the next Move
// but is never reported.
func (s *Store) liveTargetIDs(op *operation) []ID {
	out := make([]ID, 0, len(op.targetIDs))
	for _, id := range op.targetIDs {
		if _, ok := s.registry.Target(id); ok {
			out = append(out, id)
		}
	}
	return out
}

// unionIDs returns a followed by the ids of b not already in a.
func unionIDs(a, b []ID) []ID {
	out := make([]ID, 0, len(a)+len(b))
	out = append(out, a...)
	for _, id := range b {
		if !containsID(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// withoutID returns a new slice without id.
func withoutID(s []ID, id ID) []ID {
	out := make([]ID, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
