package dnd

import "github.com/tanema/gween/ease"

// LayerState is what a global drag preview needs: the dragged item's identity
// and where to draw it.
type LayerState struct {
	IsDragging                bool
	SourceID                  ID
	ItemType                  string
	ClientOffset              Point
	SourceClientOffset        Point
	InitialClientOffset       Point
	InitialSourceClientOffset Point
	DidDrop                   bool
	// Returning is set while a cancelled drag's preview animates back to its
	// origin. IsDragging is false during that time.
	Returning bool
}

// CollectLayer projects the whole store for a preview layer.
func CollectLayer(m *LayerMonitor) LayerState {
	if !m.IsDragging() {
		return LayerState{}
	}
	st := LayerState{
		IsDragging: true,
		SourceID:   m.SourceID(),
		ItemType:   m.ItemType(),
		DidDrop:    m.DidDrop(),
	}
	st.ClientOffset, _ = m.ClientOffset()
	st.SourceClientOffset, _ = m.SourceClientOffset()
	st.InitialClientOffset, _ = m.InitialClientOffset()
	st.InitialSourceClientOffset, _ = m.InitialSourceClientOffset()
	return st
}

// DragLayer observes every state and offset publish and reports LayerState
// changes. It optionally animates the preview back to its origin when a drag
// ends without a drop.
type DragLayer struct {
	// OnChange is called with the new state whenever it differs from the
	// last reported one.
	OnChange func(LayerState)

	monitor *LayerMonitor
	unsubs  []func()
	state   LayerState

	snapEnabled  bool
	snapDuration float32
	snapEase     ease.TweenFunc
	snap         *SnapBack
}

// NewDragLayer creates a layer subscribed to m's store.
func NewDragLayer(m *Manager) *DragLayer {
	l := &DragLayer{monitor: NewLayerMonitor(m.Store())}
	l.unsubs = append(l.unsubs,
		l.monitor.SubscribeToOffsetChange(l.handleChange),
		l.monitor.SubscribeToStateChange(l.handleChange),
	)
	l.state = CollectLayer(l.monitor)
	return l
}

// Monitor returns the layer's monitor.
func (l *DragLayer) Monitor() *LayerMonitor { return l.monitor }

// State returns the last collected state.
func (l *DragLayer) State() LayerState { return l.state }

// EnableSnapBack turns on the return animation for cancelled drags.
func (l *DragLayer) EnableSnapBack(duration float32, fn ease.TweenFunc) {
	l.snapEnabled = true
	l.snapDuration = duration
	l.snapEase = fn
}

// Returning reports whether a return animation is running.
func (l *DragLayer) Returning() bool {
	return l.snap != nil
}

// Update advances the return animation by dt seconds.
func (l *DragLayer) Update(dt float32) {
	if l.snap == nil {
		return
	}
	pos, done := l.snap.Update(dt)
	st := l.state
	st.SourceClientOffset = pos
	if done {
		l.snap = nil
		st = LayerState{}
	}
	l.set(st)
}

// Close unsubscribes the layer.
func (l *DragLayer) Close() {
	unsubs := l.unsubs
	l.unsubs = nil
	for _, fn := range unsubs {
		fn()
	}
	l.snap = nil
}

func (l *DragLayer) handleChange() {
	st := CollectLayer(l.monitor)
	prev := l.state

	switch {
	case st.IsDragging:
		l.snap = nil
	case prev.IsDragging && !prev.DidDrop && l.snapEnabled:
		l.snap = NewSnapBack(prev.SourceClientOffset, prev.InitialSourceClientOffset, l.snapDuration, l.snapEase)
		st = LayerState{
			SourceID:                  prev.SourceID,
			ItemType:                  prev.ItemType,
			SourceClientOffset:        prev.SourceClientOffset,
			InitialSourceClientOffset: prev.InitialSourceClientOffset,
			Returning:                 true,
		}
	case l.snap != nil:
		// Idle publishes during the animation do not interrupt it.
		return
	}
	l.set(st)
}

func (l *DragLayer) set(st LayerState) {
	if st == l.state {
		return
	}
	l.state = st
	if l.OnChange != nil {
		l.OnChange(st)
	}
}
