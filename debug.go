package dnd

import (
	"fmt"
	"io"
)

// debugf prints a transition trace line when debug mode is on.
func (s *Store) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[dnd] "+format+"\n", args...)
}

// debugMaxPublishDepth is the publish nesting depth above which a warning is
// printed. Deep nesting means listeners keep triggering transitions.
const debugMaxPublishDepth = 8

func (s *Store) debugCheckPublishDepth() {
	if !s.debug || s.publishDepth <= debugMaxPublishDepth {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[dnd] warning: publish depth %d exceeds %d (source %s)\n",
		s.publishDepth, debugMaxPublishDepth, s.SourceID())
}

// SetDebug toggles transition tracing.
func (s *Store) SetDebug(enabled bool) {
	s.debug = enabled
}

// SetDebugOutput redirects trace output, which defaults to stderr.
func (s *Store) SetDebugOutput(w io.Writer) {
	s.debugOut = w
}

// debugStats reports subscription counts per channel.
type debugStats struct {
	stateSubscriptions  int
	offsetSubscriptions int
	sources             int
	targets             int
}

func (s *Store) stats() debugStats {
	return debugStats{
		stateSubscriptions:  s.subs.count(ChannelState),
		offsetSubscriptions: s.subs.count(ChannelOffset),
		sources:             len(s.registry.sourceOrder),
		targets:             len(s.registry.targetOrder),
	}
}

// DebugLog prints registry and subscription counts when debug mode is on.
func (s *Store) DebugLog() {
	if !s.debug {
		return
	}
	st := s.stats()
	_, _ = fmt.Fprintf(s.debugOut,
		"[dnd] sources: %d | targets: %d | state subs: %d | offset subs: %d | dragging: %t\n",
		st.sources, st.targets, st.stateSubscriptions, st.offsetSubscriptions, s.IsDragging())
}
