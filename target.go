package dnd

// TargetSpec holds the user callbacks of a drop target. Only Drop is
// required.
type TargetSpec[P any] struct {
	// CanDrop gates drops on this target. Defaults to true.
	CanDrop func(props P, m *TargetMonitor) bool
	// Drop returns the drop result; nil means "no result".
	Drop func(props P, m *TargetMonitor) any
	// Enter runs when the pointer starts hovering the target.
	Enter func(props P, m *TargetMonitor)
	// Leave runs when the pointer stops hovering the target.
	Leave func(props P, m *TargetMonitor)
	// Hover runs after every move while the target is hovered.
	Hover func(props P, m *TargetMonitor)
}

// Target adapts a TargetSpec to the DropTarget interface. Until the first
// ReceiveProps every method is a no-op or returns false/nil.
type Target[P any] struct {
	monitor  *TargetMonitor
	spec     TargetSpec[P]
	props    P
	hasProps bool
	element  Element
}

// NewTarget creates a target adapter reporting to monitor.
func NewTarget[P any](monitor *TargetMonitor, spec TargetSpec[P]) *Target[P] {
	return &Target[P]{monitor: monitor, spec: spec}
}

// ReceiveProps replaces the props snapshot.
func (t *Target[P]) ReceiveProps(props P) {
	t.props = props
	t.hasProps = true
}

// Props returns the current props snapshot.
func (t *Target[P]) Props() (P, bool) {
	return t.props, t.hasProps
}

// ReceiveElement attaches the geometry handle. A nil element is rejected with
// ErrInvalidAttachment and the previous element is kept.
func (t *Target[P]) ReceiveElement(el Element) error {
	if !validElement(el) {
		return ErrInvalidAttachment
	}
	t.element = el
	return nil
}

// Element returns the attached geometry handle, or nil.
func (t *Target[P]) Element() Element {
	return t.element
}

func (t *Target[P]) CanDrop() bool {
	if !t.hasProps {
		return false
	}
	if t.spec.CanDrop == nil {
		return true
	}
	return t.spec.CanDrop(t.props, t.monitor)
}

func (t *Target[P]) Drop() any {
	if !t.hasProps || t.spec.Drop == nil {
		return nil
	}
	return t.spec.Drop(t.props, t.monitor)
}

func (t *Target[P]) Enter() {
	if t.hasProps && t.spec.Enter != nil {
		t.spec.Enter(t.props, t.monitor)
	}
}

func (t *Target[P]) Leave() {
	if t.hasProps && t.spec.Leave != nil {
		t.spec.Leave(t.props, t.monitor)
	}
}

func (t *Target[P]) Hover() {
	if t.hasProps && t.spec.Hover != nil {
		t.spec.Hover(t.props, t.monitor)
	}
}
