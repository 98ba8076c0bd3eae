package dnd

import "fmt"

// ID identifies a registered drag source or drop target. Source and target ids
// come from separate counters and carry a role prefix, so they never collide.
type ID string

// DragSource is the engine-facing side of a source adapter. Source implements
// it on top of a user SourceSpec.
type DragSource interface {
	Element() Element
	CanDrag() bool
	BeginDrag(s *Store, id ID, ev PointerEvent) any
	IsDragging(s *Store, id ID) bool
	Move(s *Store, ev PointerEvent)
	EndDrag(s *Store)
}

// DropTarget is the engine-facing side of a target adapter. Target implements
// it on top of a user TargetSpec.
type DropTarget interface {
	Element() Element
	CanDrop() bool
	Drop() any
	Enter()
	Leave()
	Hover()
}

// Registry assigns ids to sources and targets and remembers their item types.
// Lookups of unknown ids report ok == false: an id that disappears while a
// notification is in flight is an expected race, not an error.
type Registry struct {
	sourceCount int
	targetCount int
	sources     map[ID]DragSource
	targets     map[ID]DropTarget
	itemTypes   map[ID]string

	// Registration order, used for deterministic hit testing.
	sourceOrder []ID
	targetOrder []ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sources:   make(map[ID]DragSource),
		targets:   make(map[ID]DropTarget),
		itemTypes: make(map[ID]string),
	}
}

// RegisterSource stores src under a fresh id. The returned function removes
// the registration; calling it more than once, or from inside a listener, is
// safe.
func (r *Registry) RegisterSource(itemType string, src DragSource) (ID, func()) {
	id := ID(fmt.Sprintf("DragSource(%d)", r.sourceCount))
	r.sourceCount++

	r.sources[id] = src
	r.itemTypes[id] = itemType
	r.sourceOrder = append(r.sourceOrder, id)

	return id, func() {
		if _, ok := r.sources[id]; !ok {
			return
		}
		delete(r.sources, id)
		delete(r.itemTypes, id)
		r.sourceOrder = removeID(r.sourceOrder, id)
	}
}

// RegisterTarget stores tgt under a fresh id. See RegisterSource.
func (r *Registry) RegisterTarget(itemType string, tgt DropTarget) (ID, func()) {
	id := ID(fmt.Sprintf("DropTarget(%d)", r.targetCount))
	r.targetCount++

	r.targets[id] = tgt
	r.itemTypes[id] = itemType
	r.targetOrder = append(r.targetOrder, id)

	return id, func() {
		if _, ok := r.targets[id]; !ok {
			return
		}
		delete(r.targets, id)
		delete(r.itemTypes, id)
		r.targetOrder = removeID(r.targetOrder, id)
	}
}

// Source returns the adapter registered under id.
func (r *Registry) Source(id ID) (DragSource, bool) {
	src, ok := r.sources[id]
	return src, ok
}

// Target returns the adapter registered under id.
func (r *Registry) Target(id ID) (DropTarget, bool) {
	tgt, ok := r.targets[id]
	return tgt, ok
}

// ItemType returns the item type a source or target was registered with.
func (r *Registry) ItemType(id ID) (string, bool) {
	t, ok := r.itemTypes[id]
	return t, ok
}

// SourceIDs returns the live source ids in registration order.
func (r *Registry) SourceIDs() []ID {
	return append([]ID(nil), r.sourceOrder...)
}

// TargetIDs returns the live target ids in registration order.
func (r *Registry) TargetIDs() []ID {
	return append([]ID(nil), r.targetOrder...)
}

func removeID(s []ID, id ID) []ID {
	for i := range s {
		if s[i] == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = ""
			return s[:len(s)-1]
		}
	}
	return s
}

func containsID(s []ID, id ID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}
