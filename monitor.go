package dnd

// monitorBase holds the read accessors shared by every monitor kind. They all
// read straight through to the Store and return zero values when idle.
type monitorBase struct {
	store *Store
}

// SourceID returns the dragged source, or "" when idle.
func (m monitorBase) SourceID() ID { return m.store.SourceID() }

// TargetIDs returns the hovered targets, innermost first.
func (m monitorBase) TargetIDs() []ID { return m.store.TargetIDs() }

// ItemType returns the dragged item type.
func (m monitorBase) ItemType() string { return m.store.ItemType() }

// Item returns the dragged item.
func (m monitorBase) Item() any { return m.store.Item() }

// ClientOffset returns the current pointer position.
func (m monitorBase) ClientOffset() (Point, bool) { return m.store.ClientOffset() }

// SourceClientOffset returns the current top-left of the dragged source.
func (m monitorBase) SourceClientOffset() (Point, bool) { return m.store.SourceClientOffset() }

// InitialClientOffset returns the pointer position at the start of the drag.
func (m monitorBase) InitialClientOffset() (Point, bool) { return m.store.InitialClientOffset() }

// InitialSourceClientOffset returns the source top-left at the start of the drag.
func (m monitorBase) InitialSourceClientOffset() (Point, bool) {
	return m.store.InitialSourceClientOffset()
}

// DropResult returns the stored drop result.
func (m monitorBase) DropResult() any { return m.store.DropResult() }

// DidDrop reports whether a drop result is stored.
func (m monitorBase) DidDrop() bool { return m.store.DidDrop() }

// SourceMonitor is the view of the store handed to a source's spec callbacks.
// Its subscriptions fire only for publishes that mark its source dirty.
type SourceMonitor struct {
	monitorBase
	id ID
}

// NewSourceMonitor creates a monitor for a source that is not yet registered.
// The id is assigned once the source is registered.
func NewSourceMonitor(s *Store) *SourceMonitor {
	return &SourceMonitor{monitorBase: monitorBase{store: s}}
}

func (m *SourceMonitor) receiveID(id ID) {
	m.id = id
}

// ID returns the id of the monitored source.
func (m *SourceMonitor) ID() ID {
	return m.id
}

func (m *SourceMonitor) dirty(d Dirty) bool {
	return d.HasSource(m.id)
}

// SubscribeToStateChange subscribes to state publishes concerning this source.
func (m *SourceMonitor) SubscribeToStateChange(listener Listener) Unsubscribe {
	return m.store.SubscribeToStateChange(listener, m.dirty)
}

// SubscribeToOffsetChange subscribes to offset publishes concerning this source.
func (m *SourceMonitor) SubscribeToOffsetChange(listener Listener) Unsubscribe {
	return m.store.SubscribeToOffsetChange(listener, m.dirty)
}

// IsDragging reports whether this source is the one being dragged. A spec's
// IsDragging override must not call it, since it is what this method asks.
func (m *SourceMonitor) IsDragging() bool {
	return m.store.IsSourceDragging(m.id)
}

// CanDrag asks the source adapter. It is false once the source is gone.
func (m *SourceMonitor) CanDrag() bool {
	src, ok := m.store.registry.Source(m.id)
	if !ok {
		return false
	}
	return src.CanDrag()
}

// TargetMonitor is the view of the store handed to a target's spec callbacks.
// Its subscriptions fire only for publishes that mark its target dirty.
type TargetMonitor struct {
	monitorBase
	id ID
}

// NewTargetMonitor creates a monitor for a target that is not yet registered.
func NewTargetMonitor(s *Store) *TargetMonitor {
	return &TargetMonitor{monitorBase: monitorBase{store: s}}
}

func (m *TargetMonitor) receiveID(id ID) {
	m.id = id
}

// ID returns the id of the monitored target.
func (m *TargetMonitor) ID() ID {
	return m.id
}

func (m *TargetMonitor) dirty(d Dirty) bool {
	return d.HasTarget(m.id)
}

// SubscribeToStateChange subscribes to state publishes concerning this target.
func (m *TargetMonitor) SubscribeToStateChange(listener Listener) Unsubscribe {
	return m.store.SubscribeToStateChange(listener, m.dirty)
}

// SubscribeToOffsetChange subscribes to offset publishes concerning this target.
func (m *TargetMonitor) SubscribeToOffsetChange(listener Listener) Unsubscribe {
	return m.store.SubscribeToOffsetChange(listener, m.dirty)
}

// IsDragging reports whether any drag is in progress.
func (m *TargetMonitor) IsDragging() bool {
	return m.store.IsDragging()
}

// IsOver reports whether the pointer is over this target. With shallow set,
// only the innermost hovered target reports true.
func (m *TargetMonitor) IsOver(shallow bool) bool {
	return m.store.IsOverTarget(m.id, shallow)
}

// CanDrop reports whether the dragged item may be dropped here.
func (m *TargetMonitor) CanDrop() bool {
	return m.store.CanDropOnTarget(m.id)
}

// LayerMonitor is the unfiltered view used by observers that are not tied to
// one source or target, such as a drag preview layer.
type LayerMonitor struct {
	monitorBase
}

// NewLayerMonitor creates a monitor over s.
func NewLayerMonitor(s *Store) *LayerMonitor {
	return &LayerMonitor{monitorBase: monitorBase{store: s}}
}

// SubscribeToStateChange subscribes to every state publish.
func (m *LayerMonitor) SubscribeToStateChange(listener Listener) Unsubscribe {
	return m.store.SubscribeToStateChange(listener, Always)
}

// SubscribeToOffsetChange subscribes to every offset publish.
func (m *LayerMonitor) SubscribeToOffsetChange(listener Listener) Unsubscribe {
	return m.store.SubscribeToOffsetChange(listener, Always)
}

// IsDragging reports whether any drag is in progress.
func (m *LayerMonitor) IsDragging() bool {
	return m.store.IsDragging()
}
