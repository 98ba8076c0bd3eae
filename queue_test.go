package dnd

import "testing"

func TestTransitionQueueFIFO(t *testing.T) {
	var q transitionQueue
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		q.push(func() { order = append(order, i) })
	}
	if q.size() != 3 {
		t.Fatalf("size = %d, want 3", q.size())
	}
	for {
		fn, ok := q.pop()
		if !ok {
			break
		}
		fn()
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
	if _, ok := q.pop(); ok {
		t.Error("pop on empty queue should report false")
	}
}

func TestTransitionQueuePushDuringDrain(t *testing.T) {
	var q transitionQueue
	var order []string
	q.push(func() {
		order = append(order, "a")
		q.push(func() { order = append(order, "c") })
	})
	q.push(func() { order = append(order, "b") })

	for {
		fn, ok := q.pop()
		if !ok {
			break
		}
		fn()
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}
