package dnd

// SourceState is what a rendered drag source needs to know. It is recomputed
// by CollectSource after every publish that concerns the source.
type SourceState struct {
	ID         ID
	IsDragging bool
	CanDrag    bool
	DidDrop    bool
}

// CollectSource projects the store onto one source.
func CollectSource(m *SourceMonitor) SourceState {
	return SourceState{
		ID:         m.ID(),
		IsDragging: m.IsDragging(),
		CanDrag:    m.CanDrag(),
		DidDrop:    m.IsDragging() && m.DidDrop(),
	}
}

// TargetState is what a rendered drop target needs to know.
type TargetState struct {
	ID            ID
	IsDragging    bool
	IsOver        bool
	IsOverShallow bool
	CanDrop       bool
	ItemType      string
}

// CollectTarget projects the store onto one target.
func CollectTarget(m *TargetMonitor) TargetState {
	return TargetState{
		ID:            m.ID(),
		IsDragging:    m.IsDragging(),
		IsOver:        m.IsOver(false),
		IsOverShallow: m.IsOver(true),
		CanDrop:       m.CanDrop(),
		ItemType:      m.ItemType(),
	}
}

// SourceBinding ties a drag source to a view: it registers the adapter,
// subscribes it to the store and reports SourceState changes through
// OnChange. Mount it once the view exists and Unregister it when the view
// goes away.
type SourceBinding[P any] struct {
	// OnChange is called with the new state whenever it differs from the
	// last reported one.
	OnChange func(SourceState)

	id       ID
	store    *Store
	monitor  *SourceMonitor
	source   *Source[P]
	unsubs   []func()
	mounted  bool
	state    SourceState
	hasState bool
}

// NewDragSource registers a drag source of itemType with m.
func NewDragSource[P any](m *Manager, itemType string, spec SourceSpec[P]) (*SourceBinding[P], error) {
	if spec.BeginDrag == nil {
		return nil, ErrMissingBeginDrag
	}
	store := m.Store()
	mon := NewSourceMonitor(store)
	src := NewSource(mon, spec)
	id, unregister := m.Registry().RegisterSource(itemType, src)
	mon.receiveID(id)

	b := &SourceBinding[P]{id: id, store: store, monitor: mon, source: src}
	b.unsubs = append(b.unsubs,
		unregister,
		mon.SubscribeToOffsetChange(b.handleChange),
		mon.SubscribeToStateChange(b.handleChange),
	)
	return b, nil
}

// ID returns the registered source id.
func (b *SourceBinding[P]) ID() ID { return b.id }

// Monitor returns the source's monitor.
func (b *SourceBinding[P]) Monitor() *SourceMonitor { return b.monitor }

// Source returns the underlying adapter.
func (b *SourceBinding[P]) Source() *Source[P] { return b.source }

// State returns the last collected state.
func (b *SourceBinding[P]) State() SourceState { return b.state }

// Mount delivers the first props and reports the initial state.
func (b *SourceBinding[P]) Mount(props P) {
	b.source.ReceiveProps(props)
	b.mounted = true
	b.handleChange()
}

// SetProps replaces the props and recollects.
func (b *SourceBinding[P]) SetProps(props P) {
	b.source.ReceiveProps(props)
	b.handleChange()
}

// ReceiveElement attaches the geometry handle.
func (b *SourceBinding[P]) ReceiveElement(el Element) error {
	return b.source.ReceiveElement(el)
}

// BeginDrag starts dragging this source from ev.
func (b *SourceBinding[P]) BeginDrag(ev PointerEvent) {
	b.source.BeginDrag(b.store, b.id, ev)
}

// Move forwards a pointer move through the source.
func (b *SourceBinding[P]) Move(ev PointerEvent) {
	b.source.Move(b.store, ev)
}

// EndDrag drops and ends the operation through the source.
func (b *SourceBinding[P]) EndDrag() {
	b.source.EndDrag(b.store)
}

// Unregister removes the source from the registry and drops its
// subscriptions. It is idempotent and may be called from OnChange.
func (b *SourceBinding[P]) Unregister() {
	b.mounted = false
	unsubs := b.unsubs
	b.unsubs = nil
	for _, fn := range unsubs {
		fn()
	}
}

func (b *SourceBinding[P]) handleChange() {
	if !b.mounted {
		return
	}
	st := CollectSource(b.monitor)
	if b.hasState && st == b.state {
		return
	}
	b.state = st
	b.hasState = true
	if b.OnChange != nil {
		b.OnChange(st)
	}
}

// TargetBinding ties a drop target to a view. See SourceBinding.
type TargetBinding[P any] struct {
	// OnChange is called with the new state whenever it differs from the
	// last reported one.
	OnChange func(TargetState)

	id       ID
	monitor  *TargetMonitor
	target   *Target[P]
	unsubs   []func()
	mounted  bool
	state    TargetState
	hasState bool
}

// NewDropTarget registers a drop target accepting itemType with m.
func NewDropTarget[P any](m *Manager, itemType string, spec TargetSpec[P]) (*TargetBinding[P], error) {
	if spec.Drop == nil {
		return nil, ErrMissingDrop
	}
	mon := NewTargetMonitor(m.Store())
	tgt := NewTarget(mon, spec)
	id, unregister := m.Registry().RegisterTarget(itemType, tgt)
	mon.receiveID(id)

	b := &TargetBinding[P]{id: id, monitor: mon, target: tgt}
	b.unsubs = append(b.unsubs,
		unregister,
		mon.SubscribeToOffsetChange(b.handleChange),
		mon.SubscribeToStateChange(b.handleChange),
	)
	return b, nil
}

// ID returns the registered target id.
func (b *TargetBinding[P]) ID() ID { return b.id }

// Monitor returns the target's monitor.
func (b *TargetBinding[P]) Monitor() *TargetMonitor { return b.monitor }

// Target returns the underlying adapter.
func (b *TargetBinding[P]) Target() *Target[P] { return b.target }

// State returns the last collected state.
func (b *TargetBinding[P]) State() TargetState { return b.state }

// Mount delivers the first props and reports the initial state.
func (b *TargetBinding[P]) Mount(props P) {
	b.target.ReceiveProps(props)
	b.mounted = true
	b.handleChange()
}

// SetProps replaces the props and recollects.
func (b *TargetBinding[P]) SetProps(props P) {
	b.target.ReceiveProps(props)
	b.handleChange()
}

// ReceiveElement attaches the geometry handle.
func (b *TargetBinding[P]) ReceiveElement(el Element) error {
	return b.target.ReceiveElement(el)
}

// Unregister removes the target from the registry and drops its
// subscriptions. It is idempotent and may be called from OnChange.
func (b *TargetBinding[P]) Unregister() {
	b.mounted = false
	unsubs := b.unsubs
	b.unsubs = nil
	for _, fn := range unsubs {
		fn()
	}
}

func (b *TargetBinding[P]) handleChange() {
	if !b.mounted {
		return
	}
	st := CollectTarget(b.monitor)
	if b.hasState && st == b.state {
		return
	}
	b.state = st
	b.hasState = true
	if b.OnChange != nil {
		b.OnChange(st)
	}
}
