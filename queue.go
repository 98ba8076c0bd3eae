package dnd

// transitionQueue is a FIFO of deferred store transitions. It is only used
// when Options.QueueTransitions is set: a transition requested while another
// one is running waits here and runs after the outer one completes, strictly
// in the order it was issued.
//
// The store is single-threaded, so the queue has no locking.
type transitionQueue struct {
	items []func()
}

func (q *transitionQueue) push(fn func()) {
	q.items = append(q.items, fn)
}

// pop removes and returns the front transition.
func (q *transitionQueue) pop() (func(), bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	fn := q.items[0]
	// Nil out the slot so the closure can be collected.
	q.items[0] = nil
	if len(q.items) == 1 {
		q.items = q.items[:0]
	} else {
		q.items = q.items[1:]
	}
	return fn, true
}

func (q *transitionQueue) size() int {
	return len(q.items)
}
