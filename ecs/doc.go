// Package ecs provides ECS adapters for dnd's drag event stream.
//
// The primary adapter is [NewDonburiSink], which forwards every drag
// transition (begin, enter, leave, drop, end) into a [Donburi] world as a
// typed event. Subscribe to [DragEventType] in your ECS systems to receive
// all of them, or to one of the per-transition types such as
// [DropEventType] ([EventTypeFor] maps a dnd.EventType to its type).
// [SkipEmptyDrops] filters out drop events from targets that declined.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	manager.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
