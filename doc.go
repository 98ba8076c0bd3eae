// Package dnd is the drag-and-drop coordination engine behind pointer-driven
// drag interactions in Ebitengine games and tools.
//
// It tracks which draggable source is active, which drop targets the pointer
// is over, the pointer and source geometry needed to draw a preview, and the
// final drop result. It renders nothing and measures nothing itself: sources
// and targets supply an [Element] whose bounds the engine reads on demand.
//
// # Quick start
//
// Create one [Manager] per independent drag area and hand it to every source,
// target and layer that should interact:
//
//	m := dnd.NewManager(dnd.Options{})
//
//	card, _ := dnd.NewDragSource(m, "card", dnd.SourceSpec[Card]{
//		BeginDrag: func(c Card, _ *dnd.SourceMonitor) any { return c.ID },
//	})
//	card.Mount(Card{ID: 7})
//	_ = card.ReceiveElement(dnd.StaticElement{X: 10, Y: 10, Width: 80, Height: 120})
//
//	pile, _ := dnd.NewDropTarget(m, "card", dnd.TargetSpec[Pile]{
//		Drop: func(p Pile, _ *dnd.TargetMonitor) any { return p.Name },
//	})
//	pile.Mount(Pile{Name: "discard"})
//	_ = pile.ReceiveElement(dnd.StaticElement{X: 300, Y: 10, Width: 100, Height: 140})
//
// Sources and targets only interact when their item type strings are equal.
//
// # Driving the engine
//
// A [Driver] polls Ebitengine's pointer each frame and calls BeginDrag, Move
// and EndDrag on the source under the pointer:
//
//	driver := dnd.NewDriver(m)
//	// in Game.Update:
//	driver.Update()
//
// Any other input layer can call the same transitions through
// [SourceBinding.BeginDrag], [SourceBinding.Move] and [SourceBinding.EndDrag],
// or through the [Store] directly.
//
// # Observing changes
//
// The [Store] publishes on two channels: state (who is dragging, who is
// hovered, the drop result) and offset (pointer and source positions). Each
// publish carries a [Dirty] set of the ids it touched, and a subscription's
// predicate decides whether it cares. Bindings subscribe with their own id, so
// a target is only re-collected when it is affected; a [DragLayer] subscribes
// to everything.
//
// Bindings report plain projection structs ([SourceState], [TargetState],
// [LayerState]) through their OnChange callbacks, only when the projection
// actually changed.
//
// # Nested targets
//
// Hovered targets are kept innermost first: a target entered later is put in
// front. [TargetMonitor.IsOver] with shallow set is true only for the front
// target. On drop, targets are asked front to back; with [DropLastWins] (the
// default) the last non-nil result wins, with [DropFirstWins] the first.
//
// # Reentrancy
//
// Everything is synchronous and single-threaded. Listeners and hooks may call
// transitions and may unregister sources and targets. By default a nested
// transition runs immediately; with Options.QueueTransitions it is deferred
// until the running transition completes.
//
// # ECS integration
//
// Set an [EventSink] with [Manager.SetEventSink] to receive every transition
// as a [DragEvent]. The dnd/ecs package provides a Donburi adapter.
package dnd
