package dnd

import "testing"

func TestSubscriptionPredicateFiltersByID(t *testing.T) {
	var r subscriptionRegistry
	fired := 0
	r.subscribe(ChannelState, func() { fired++ }, func(d Dirty) bool { return d.HasTarget("X") })

	if n := r.publish(ChannelState, Dirty{Targets: []ID{"Y"}}); n != 0 {
		t.Errorf("publish for Y fired %d, want 0", n)
	}
	if n := r.publish(ChannelState, Dirty{Targets: []ID{"Y", "X"}}); n != 1 {
		t.Errorf("publish for X fired %d, want 1", n)
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestSubscriptionChannelsAreIndependent(t *testing.T) {
	var r subscriptionRegistry
	var state, offset int
	r.subscribe(ChannelState, func() { state++ }, nil)
	r.subscribe(ChannelOffset, func() { offset++ }, nil)

	r.publish(ChannelOffset, Dirty{})
	r.publish(ChannelOffset, Dirty{})
	r.publish(ChannelState, Dirty{})

	if state != 1 || offset != 2 {
		t.Errorf("state=%d offset=%d, want 1 and 2", state, offset)
	}
}

func TestUnsubscribeIdempotent(t *testing.T) {
	var r subscriptionRegistry
	unsub := r.subscribe(ChannelState, func() {}, nil)
	r.subscribe(ChannelState, func() {}, nil)

	unsub()
	unsub()

	if n := r.count(ChannelState); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	var r subscriptionRegistry
	var calls []string
	var unsubSecond Unsubscribe
	r.subscribe(ChannelState, func() {
		calls = append(calls, "first")
		unsubSecond()
	}, nil)
	unsubSecond = r.subscribe(ChannelState, func() { calls = append(calls, "second") }, nil)

	r.publish(ChannelState, Dirty{})
	r.publish(ChannelState, Dirty{})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "first" {
		t.Errorf("calls = %v, want [first first]", calls)
	}
}

func TestSelfUnsubscribeDuringPublish(t *testing.T) {
	var r subscriptionRegistry
	fired := 0
	var unsub Unsubscribe
	unsub = r.subscribe(ChannelState, func() {
		fired++
		unsub()
	}, nil)

	r.publish(ChannelState, Dirty{})
	r.publish(ChannelState, Dirty{})

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestSubscribeDuringPublishWaitsForNextPass(t *testing.T) {
	var r subscriptionRegistry
	late := 0
	added := false
	r.subscribe(ChannelState, func() {
		if !added {
			added = true
			r.subscribe(ChannelState, func() { late++ }, nil)
		}
	}, nil)

	r.publish(ChannelState, Dirty{})
	if late != 0 {
		t.Errorf("late subscriber fired during the pass it was added in")
	}
	r.publish(ChannelState, Dirty{})
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

// Unregistering a target from inside a listener of the same publish stops
// further notifications for it.
func TestUnregisterInsideListener(t *testing.T) {
	m := NewManager(Options{})
	src, _ := m.Registry().RegisterSource("item", &stubSource{})
	b, err := NewDropTarget(m, "item", TargetSpec[string]{
		Drop: func(string, *TargetMonitor) any { return nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.ReceiveElement(box(0, 0, 100, 100)); err != nil {
		t.Fatal(err)
	}
	b.Mount("zone")
	changes := 0
	b.OnChange = func(TargetState) {
		changes++
		b.Unregister()
	}

	s := m.Store()
	s.BeginDrag(src, nil, ev(0, 0))
	s.Move(ev(10, 10))
	s.Move(ev(20, 20))
	s.EndDrag()

	if changes != 1 {
		t.Errorf("changes = %d, want 1", changes)
	}
	if _, ok := m.Registry().Target(b.ID()); ok {
		t.Error("target should be unregistered")
	}
}
