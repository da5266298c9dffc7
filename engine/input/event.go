// Package input turns raw window events into camera operations.
//
// Events are produced by a window (or any other source) onto a Queue, drained once per frame,
// and fed one at a time, in order, to a Dispatcher.
package input

import "fmt"

// Action is the transition reported for a button or key.
type Action int

const (
	// ActionRelease reports a button or key going up.
	ActionRelease Action = iota
	// ActionPress reports a button or key going down.
	ActionPress
	// ActionRepeat reports a key held long enough to auto-repeat.
	ActionRepeat
)

func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Event is a single input event. It is a closed sum type; the implementations are Resize,
// CursorMove, ButtonPress, Scroll, Key and Close.
type Event interface {
	isEvent()
}

// Resize reports a new framebuffer size in pixels.
type Resize struct {
	Width, Height int
}

// CursorMove reports the cursor position in window coordinates.
type CursorMove struct {
	X, Y float64
}

// ButtonPress reports a mouse button transition.
type ButtonPress struct {
	Button int
	Action Action
}

// Scroll reports vertical wheel movement. Positive is away from the user.
type Scroll struct {
	Amount float64
}

// Key reports a keyboard transition.
type Key struct {
	Key    int
	Action Action
}

// Close reports an external request to close the window.
type Close struct{}

func (Resize) isEvent()      {}
func (CursorMove) isEvent()  {}
func (ButtonPress) isEvent() {}
func (Scroll) isEvent()      {}
func (Key) isEvent()         {}
func (Close) isEvent()       {}
