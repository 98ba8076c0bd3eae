package dnd

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	sourceID ID // source hit at press time, "" if none
	dragging bool
}

// Driver translates ebiten pointer input into drag transitions: press over a
// draggable source begins a drag, movement moves it, release drops and ends
// it. Call Update once per frame from the game's Update.
//
// Only the left mouse button and the first touch are tracked; the engine
// supports a single operation at a time.
type Driver struct {
	manager  *Manager
	deadZone float64
	pointer  pointerState

	injectQueue  []syntheticPointerEvent
	script       *Script
	prevTouchIDs []ebiten.TouchID
}

// NewDriver creates a driver for m. Drags begin on press; see
// SetDragDeadZone.
func NewDriver(m *Manager) *Driver {
	return &Driver{manager: m}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
// Zero, the default, starts the drag on press.
func (d *Driver) SetDragDeadZone(pixels float64) {
	d.deadZone = pixels
}

// Update runs one frame of input: the attached script, then one injected event
// if any is queued, otherwise the real pointer.
func (d *Driver) Update() {
	if d.script != nil {
		d.script.step(d)
	}
	if d.processInjectedInput() {
		return
	}
	x, y, pressed := d.readPointer()
	d.processPointer(x, y, pressed)
}

// readPointer polls ebiten for the left mouse button, falling back to the
// first active touch.
func (d *Driver) readPointer() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return float64(mx), float64(my), true
	}
	d.prevTouchIDs = ebiten.AppendTouchIDs(d.prevTouchIDs[:0])
	if len(d.prevTouchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(d.prevTouchIDs[0])
		return float64(tx), float64(ty), true
	}
	if d.pointer.down {
		// Release where the pointer was last seen rather than at the cursor,
		// which is meaningless after a touch ends.
		return d.pointer.lastX, d.pointer.lastY, false
	}
	return float64(mx), float64(my), false
}

// --- Hit testing ---

// hitSource finds the topmost draggable source at (x, y). Later registrations
// are considered on top.
func (d *Driver) hitSource(x, y float64) ID {
	reg := d.manager.Registry()
	ids := reg.SourceIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		src, ok := reg.Source(ids[i])
		if !ok {
			continue
		}
		el := src.Element()
		if !validElement(el) || !el.Bounds().Contains(x, y) {
			continue
		}
		if src.CanDrag() {
			return ids[i]
		}
	}
	return ""
}

// --- Input processing ---

// processPointer runs the pointer state machine for one sample.
func (d *Driver) processPointer(x, y float64, pressed bool) {
	ps := &d.pointer
	store := d.manager.Store()

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.sourceID = ""
		if store.IsDragging() {
			// Someone else owns the operation.
			return
		}
		ps.sourceID = d.hitSource(x, y)
		if ps.sourceID != "" && d.deadZone <= 0 {
			d.begin(x, y)
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging && ps.sourceID != "" {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > d.deadZone {
				d.begin(ps.startX, ps.startY)
			}
		}
		if ps.dragging {
			d.move(x, y)
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		if ps.dragging {
			if x != ps.lastX || y != ps.lastY {
				d.move(x, y)
			}
			d.end()
		}
		*ps = pointerState{lastX: x, lastY: y}
	}
}

func (d *Driver) begin(x, y float64) {
	ps := &d.pointer
	store := d.manager.Store()
	src, ok := d.manager.Registry().Source(ps.sourceID)
	if !ok {
		ps.sourceID = ""
		return
	}
	src.BeginDrag(store, ps.sourceID, PointerEvent{ClientX: x, ClientY: y})
	ps.dragging = store.IsDragging() && store.SourceID() == ps.sourceID
	if !ps.dragging {
		ps.sourceID = ""
	}
}

func (d *Driver) move(x, y float64) {
	store := d.manager.Store()
	ev := PointerEvent{ClientX: x, ClientY: y}
	if src, ok := d.manager.Registry().Source(d.pointer.sourceID); ok {
		src.Move(store, ev)
		return
	}
	// The source was unregistered mid-drag; keep the operation consistent.
	store.Move(ev)
}

func (d *Driver) end() {
	store := d.manager.Store()
	if src, ok := d.manager.Registry().Source(d.pointer.sourceID); ok {
		src.EndDrag(store)
		return
	}
	store.Drop()
	store.EndDrag()
}
