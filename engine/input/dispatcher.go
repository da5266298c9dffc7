package input

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// DragState is the dispatcher's interaction state.
type DragState int

const (
	// StateIdle means the drag button is up.
	StateIdle DragState = iota
	// StateDragging means the drag button is held and cursor movement drives the camera.
	StateDragging
)

func (s DragState) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Dispatcher is a two-state machine (Idle, Dragging) that translates events into camera calls.
//
// While idle, every cursor move resets the drag origin so a drag always measures from where it began.
// While dragging, each cursor move calls both Camera.Pan and Camera.Orbit; the camera ignores
// whichever does not apply to its active state. Scroll always zooms. Resize and close requests are
// passed to the registered handlers rather than touching the camera.
type Dispatcher struct {
	dragButton int
	closeKey   int

	state      DragState
	lastCursor mgl64.Vec2
	dragOrigin mgl64.Vec2

	onResize func(width, height int)
	onClose  func()
}

// NewDispatcher creates an idle Dispatcher. The drag button defaults to the middle mouse button
// and the close key to Escape.
//
// Parameters:
//   - options: functional options to configure the dispatcher
//
// Returns:
//   - *Dispatcher: the newly created dispatcher
func NewDispatcher(options ...DispatcherBuilderOption) *Dispatcher {
	d := &Dispatcher{
		dragButton: common.MouseButtonMiddle,
		closeKey:   common.KeyEsc,
		state:      StateIdle,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// State returns the current interaction state.
func (d *Dispatcher) State() DragState {
	return d.state
}

// LastCursor returns the most recently seen cursor position.
func (d *Dispatcher) LastCursor() mgl64.Vec2 {
	return d.lastCursor
}

// DragOrigin returns the cursor position the current (or next) drag is measured from.
func (d *Dispatcher) DragOrigin() mgl64.Vec2 {
	return d.dragOrigin
}

// SetResizeHandler sets the function called for Resize events.
//
// Parameters:
//   - handler: function receiving the new width and height in pixels (or nil to disable)
func (d *Dispatcher) SetResizeHandler(handler func(width, height int)) {
	d.onResize = handler
}

// SetCloseHandler sets the function called for Close events and close-key presses.
//
// Parameters:
//   - handler: function to call (or nil to disable)
func (d *Dispatcher) SetCloseHandler(handler func()) {
	d.onClose = handler
}

// Dispatch applies a single event. The camera is borrowed for the duration of the call only.
//
// Parameters:
//   - cam: the camera to mutate
//   - ev: the event to apply
func (d *Dispatcher) Dispatch(cam camera.Camera, ev Event) {
	switch e := ev.(type) {
	case ButtonPress:
		d.handleButton(e)
	case CursorMove:
		d.handleCursor(cam, mgl64.Vec2{e.X, e.Y})
	case Scroll:
		cam.Zoom(float32(e.Amount))
	case Resize:
		if d.onResize != nil {
			d.onResize(e.Width, e.Height)
		}
	case Key, Close:
		if d.isCloseRequest(e) {
			d.close()
		}
	}
}

// DispatchAll applies events in order and stops after the first close request.
// Events queued behind a close request are dropped.
//
// Parameters:
//   - cam: the camera to mutate
//   - events: the events to apply, oldest first
func (d *Dispatcher) DispatchAll(cam camera.Camera, events []Event) {
	for _, ev := range events {
		d.Dispatch(cam, ev)
		if d.isCloseRequest(ev) {
			return
		}
	}
}

// isCloseRequest reports whether ev is a Close or a press of the close key.
func (d *Dispatcher) isCloseRequest(ev Event) bool {
	switch e := ev.(type) {
	case Close:
		return true
	case Key:
		return e.Key == d.closeKey && e.Action == ActionPress
	}
	return false
}

func (d *Dispatcher) handleButton(e ButtonPress) {
	if e.Button != d.dragButton {
		return
	}
	switch {
	case e.Action == ActionPress && d.state == StateIdle:
		d.state = StateDragging
		d.dragOrigin = d.lastCursor
	case e.Action == ActionRelease && d.state == StateDragging:
		d.state = StateIdle
	}
}

func (d *Dispatcher) handleCursor(cam camera.Camera, cursor mgl64.Vec2) {
	if d.state == StateDragging {
		delta := cursor.Sub(d.lastCursor)
		ref := cursor.Sub(d.dragOrigin)
		dx, dy := float32(delta.X()), float32(delta.Y())

		cam.Pan(dx, dy)
		cam.Orbit(dx, dy, mgl32.Vec2{float32(ref.X()), float32(ref.Y())})
	} else {
		d.dragOrigin = cursor
	}
	d.lastCursor = cursor
}

func (d *Dispatcher) close() {
	if d.onClose != nil {
		d.onClose()
	}
}
