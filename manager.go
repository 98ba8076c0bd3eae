package dnd

// DropPolicy decides which result wins when several hovered targets return a
// drop result.
type DropPolicy uint8

const (
	// DropLastWins asks every eligible target front to back and keeps the last
	// non-nil result, so an outer target can override an inner one.
	DropLastWins DropPolicy = iota
	// DropFirstWins stops at the first non-nil result; the innermost
	// responding target wins and outer targets are not asked.
	DropFirstWins
)

// Options configures a Manager. The zero value is valid.
type Options struct {
	// DropPolicy selects how drop results combine. Defaults to DropLastWins.
	DropPolicy DropPolicy

	// QueueTransitions defers transitions requested from inside a listener or
	// hook until the running transition has completed. Without it they run
	// immediately, nested inside the outer transition.
	QueueTransitions bool

	// Debug traces transitions to stderr.
	Debug bool
}

// Manager is one drag-and-drop engine instance: a Registry and the Store that
// resolves ids against it. Create one per independent drag area and pass it
// to every source, target and layer that should interact.
type Manager struct {
	registry *Registry
	store    *Store
}

// NewManager creates an idle engine.
func NewManager(opts Options) *Manager {
	reg := NewRegistry()
	return &Manager{
		registry: reg,
		store:    NewStore(reg, opts),
	}
}

// Registry returns the manager's registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Store returns the manager's store.
func (m *Manager) Store() *Store {
	return m.store
}

// SetEventSink forwards every transition to sink. Pass nil to disable.
func (m *Manager) SetEventSink(sink EventSink) {
	m.store.sink = sink
}

// SetDebug toggles transition tracing.
func (m *Manager) SetDebug(enabled bool) {
	m.store.SetDebug(enabled)
}
