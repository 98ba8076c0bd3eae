package dnd

// syntheticPointerEvent represents a single injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given client coordinates. The
// event is consumed by the next Update in place of real input.
func (d *Driver) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (d *Driver) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given client coordinates.
func (d *Driver) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). The sequence consumes
// frames Updates; the minimum is 2 (press + release).
func (d *Driver) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (d *Driver) Pending() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through
// processPointer. It returns false when the queue is empty.
func (d *Driver) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	d.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
