package window

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// These exercise the platform-independent parts; no GLFW window is created.

func TestGLFWCodesMatchCommon(t *testing.T) {
	if int(glfw.KeyEscape) != common.KeyEsc {
		t.Fatalf("glfw.KeyEscape = %d, common.KeyEsc = %d", glfw.KeyEscape, common.KeyEsc)
	}
	buttons := map[glfw.MouseButton]int{
		glfw.MouseButtonLeft:   common.MouseButtonLeft,
		glfw.MouseButtonRight:  common.MouseButtonRight,
		glfw.MouseButtonMiddle: common.MouseButtonMiddle,
	}
	for g, c := range buttons {
		if int(g) != c {
			t.Errorf("glfw button %d maps to common %d", g, c)
		}
	}
}

func TestTranslateAction(t *testing.T) {
	cases := map[glfw.Action]input.Action{
		glfw.Press:   input.ActionPress,
		glfw.Repeat:  input.ActionRepeat,
		glfw.Release: input.ActionRelease,
	}
	for in, want := range cases {
		if got := translateAction(in); got != want {
			t.Errorf("translateAction(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestSizeLimit(t *testing.T) {
	if got := sizeLimit(0); got != glfw.DontCare {
		t.Fatalf("sizeLimit(0) = %d, want DontCare", got)
	}
	if got := sizeLimit(640); got != 640 {
		t.Fatalf("sizeLimit(640) = %d", got)
	}
}

func TestResizedQueuesEvent(t *testing.T) {
	w := &engineWindow{events: input.NewQueue(0)}
	w.resized(800, 0)
	w.push(input.Close{})

	// Without a platform window PollEvents only drains.
	got := w.PollEvents()
	want := []input.Event{input.Resize{Width: 800, Height: 0}, input.Close{}}
	if len(got) != len(want) {
		t.Fatalf("PollEvents() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if w.Width() != 800 || w.Height() != 0 {
		t.Fatalf("size = %dx%d, want 800x0", w.Width(), w.Height())
	}
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{events: input.NewQueue(0)}
	if w.IsRunning() {
		t.Fatalf("IsRunning() = true without a platform window")
	}
	if w.SurfaceDescriptor() != nil {
		t.Fatalf("SurfaceDescriptor() != nil without a platform window")
	}
	if err := w.Close(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Close() = %v, want ErrNotInitialized", err)
	}
}

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{}
	for _, opt := range []WindowBuilderOption{
		WithTitle("viewer"),
		WithSize(1024, 768),
		WithMinSize(320, 200),
		WithMaxSize(4096, 2160),
	} {
		opt(w)
	}
	if w.Title() != "viewer" || w.width != 1024 || w.height != 768 {
		t.Fatalf("window = %+v", w)
	}
	if w.minWidth != 320 || w.minHeight != 200 || w.maxWidth != 4096 || w.maxHeight != 2160 {
		t.Fatalf("limits = %+v", w)
	}
}
