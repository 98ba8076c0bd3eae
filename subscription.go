package dnd

// Dirty lists the source and target ids touched by one transition. Each
// publish receives its own Dirty value; nested transitions never merge into
// an outer one.
type Dirty struct {
	Sources []ID
	Targets []ID
}

// HasSource reports whether id is among the dirty sources.
func (d Dirty) HasSource(id ID) bool {
	return containsID(d.Sources, id)
}

// HasTarget reports whether id is among the dirty targets.
func (d Dirty) HasTarget(id ID) bool {
	return containsID(d.Targets, id)
}

// Listener is called when a subscription's predicate accepts a publish.
type Listener func()

// ShouldNotify filters publishes for a subscription.
type ShouldNotify func(Dirty) bool

// Unsubscribe removes a subscription. It is idempotent.
type Unsubscribe func()

// Always is the predicate for observers interested in every change, such as
// a global drag layer.
func Always(Dirty) bool { return true }

// Channel selects which publish stream a subscription listens to.
type Channel uint8

const (
	// ChannelState carries identity and membership changes: who is dragging,
	// which targets are hovered, the drop result.
	ChannelState Channel = iota
	// ChannelOffset carries pure geometry updates.
	ChannelOffset
)

type subscription struct {
	id           uint32
	listener     Listener
	shouldNotify ShouldNotify
	removed      bool
}

// subscriptionRegistry is a scan-and-test broadcaster. Every publish visits
// every subscription of the channel and evaluates its predicate.
type subscriptionRegistry struct {
	state  []*subscription
	offset []*subscription
	nextID uint32
}

func (r *subscriptionRegistry) channel(c Channel) *[]*subscription {
	if c == ChannelOffset {
		return &r.offset
	}
	return &r.state
}

func (r *subscriptionRegistry) subscribe(c Channel, listener Listener, shouldNotify ShouldNotify) Unsubscribe {
	if shouldNotify == nil {
		shouldNotify = Always
	}
	r.nextID++
	sub := &subscription{id: r.nextID, listener: listener, shouldNotify: shouldNotify}
	ch := r.channel(c)
	*ch = append(*ch, sub)

	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		*ch = removeSubscription(*ch, sub.id)
	}
}

// publish notifies every matching subscription. It iterates a snapshot so
// listeners may subscribe or unsubscribe freely; a subscription removed
// during the pass is skipped if it has not been reached yet.
func (r *subscriptionRegistry) publish(c Channel, dirty Dirty) int {
	ch := r.channel(c)
	if len(*ch) == 0 {
		return 0
	}
	snapshot := make([]*subscription, len(*ch))
	copy(snapshot, *ch)

	fired := 0
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		if !sub.shouldNotify(dirty) {
			continue
		}
		fired++
		sub.listener()
	}
	return fired
}

func (r *subscriptionRegistry) count(c Channel) int {
	return len(*r.channel(c))
}

func removeSubscription(s []*subscription, id uint32) []*subscription {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}
