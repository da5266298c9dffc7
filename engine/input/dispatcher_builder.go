package input

// DispatcherBuilderOption is a functional option for configuring a Dispatcher.
type DispatcherBuilderOption func(*Dispatcher)

// WithDragButton sets the mouse button that starts a drag.
//
// Parameters:
//   - button: a mouse button code (see common.MouseButtonLeft and friends)
//
// Returns:
//   - DispatcherBuilderOption: option function to apply
func WithDragButton(button int) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.dragButton = button
	}
}

// WithCloseKey sets the key whose press requests shutdown.
//
// Parameters:
//   - key: a key code (see common.KeyEsc)
//
// Returns:
//   - DispatcherBuilderOption: option function to apply
func WithCloseKey(key int) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.closeKey = key
	}
}

// WithResizeHandler sets the function called for Resize events.
func WithResizeHandler(handler func(width, height int)) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.onResize = handler
	}
}

// WithCloseHandler sets the function called for Close events and close-key presses.
func WithCloseHandler(handler func()) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.onClose = handler
	}
}
