package dnd

// SourceSpec holds the user callbacks of a drag source. Only BeginDrag is
// required. Every callback receives the latest props snapshot and the
// source's monitor.
type SourceSpec[P any] struct {
	// CanDrag gates the start of a drag. Defaults to true.
	CanDrag func(props P, m *SourceMonitor) bool
	// IsDragging overrides the default id comparison, for sources that stay
	// "dragging" across remounts. It must not call m.IsDragging.
	IsDragging func(props P, m *SourceMonitor) bool
	// BeginDrag returns the item carried by the operation.
	BeginDrag func(props P, m *SourceMonitor) any
	// Move runs before the store processes each pointer move.
	Move func(props P, m *SourceMonitor)
	// EndDrag runs after the drop phase and before the operation is cleared,
	// so m.DropResult and m.DidDrop report the outcome.
	EndDrag func(props P, m *SourceMonitor)
}

// Source adapts a SourceSpec to the DragSource interface. It holds no drag
// state of its own. Until the first ReceiveProps every method is a no-op or
// returns false.
type Source[P any] struct {
	monitor  *SourceMonitor
	spec     SourceSpec[P]
	props    P
	hasProps bool
	element  Element
}

// NewSource creates a source adapter reporting to monitor.
func NewSource[P any](monitor *SourceMonitor, spec SourceSpec[P]) *Source[P] {
	return &Source[P]{monitor: monitor, spec: spec}
}

// ReceiveProps replaces the props snapshot.
func (s *Source[P]) ReceiveProps(props P) {
	s.props = props
	s.hasProps = true
}

// Props returns the current props snapshot.
func (s *Source[P]) Props() (P, bool) {
	return s.props, s.hasProps
}

// ReceiveElement attaches the geometry handle. A nil element is rejected with
// ErrInvalidAttachment and the previous element is kept.
func (s *Source[P]) ReceiveElement(el Element) error {
	if !validElement(el) {
		return ErrInvalidAttachment
	}
	s.element = el
	return nil
}

// Element returns the attached geometry handle, or nil.
func (s *Source[P]) Element() Element {
	return s.element
}

// CanDrag reports whether a drag may start from this source.
func (s *Source[P]) CanDrag() bool {
	if !s.hasProps {
		return false
	}
	if s.spec.CanDrag == nil {
		return true
	}
	return s.spec.CanDrag(s.props, s.monitor)
}

// BeginDrag computes the item and starts the operation in store.
func (s *Source[P]) BeginDrag(store *Store, id ID, ev PointerEvent) any {
	if !s.hasProps {
		return nil
	}
	var item any
	if s.spec.BeginDrag != nil {
		item = s.spec.BeginDrag(s.props, s.monitor)
	}
	store.BeginDrag(id, item, ev)
	return item
}

// IsDragging reports whether this source is being dragged.
func (s *Source[P]) IsDragging(store *Store, id ID) bool {
	if !s.hasProps {
		return false
	}
	if s.spec.IsDragging == nil {
		return id == store.SourceID()
	}
	return s.spec.IsDragging(s.props, s.monitor)
}

// Move runs the Move hook and forwards the event. Hover is called again after
// Move so hover hooks also run for input layers that only report enter and
// leave; targets under a binding therefore see two hover calls per move.
func (s *Source[P]) Move(store *Store, ev PointerEvent) {
	if !s.hasProps {
		return
	}
	if s.spec.Move != nil {
		s.spec.Move(s.props, s.monitor)
	}
	store.Move(ev)
	store.Hover()
}

// EndDrag runs the drop phase, the EndDrag hook and finally clears the
// operation, as one transition.
func (s *Source[P]) EndDrag(store *Store) {
	if !s.hasProps {
		return
	}
	var hook func()
	if s.spec.EndDrag != nil {
		props := s.props
		hook = func() { s.spec.EndDrag(props, s.monitor) }
	}
	store.finishDrag(hook)
}
