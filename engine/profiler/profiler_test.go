package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var buf bytes.Buffer
	p := NewProfiler(
		WithClock(clock.now),
		WithLogger(log.New(&buf, "", 0)),
		WithInterval(time.Second),
	)

	for i := 0; i < 59; i++ {
		clock.advance(16 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("Tick() reported early at frame %d", i)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output before interval: %q", buf.String())
	}

	clock.advance(time.Second)
	if !p.Tick() {
		t.Fatalf("Tick() did not report after the interval elapsed")
	}

	s := p.Last()
	if s.Frames != 60 {
		t.Fatalf("Frames = %d, want 60", s.Frames)
	}
	wantElapsed := 59*16*time.Millisecond + time.Second
	if s.Elapsed != wantElapsed {
		t.Fatalf("Elapsed = %v, want %v", s.Elapsed, wantElapsed)
	}
	if want := 60 / wantElapsed.Seconds(); s.FPS != want {
		t.Fatalf("FPS = %v, want %v", s.FPS, want)
	}
	if s.FrameTime != wantElapsed/60 {
		t.Fatalf("FrameTime = %v, want %v", s.FrameTime, wantElapsed/60)
	}
	if !strings.HasPrefix(buf.String(), "[Profiler] FPS:") {
		t.Fatalf("log line = %q", buf.String())
	}
}

func TestTickStartsNewWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var buf bytes.Buffer
	p := NewProfiler(WithClock(clock.now), WithLogger(log.New(&buf, "", 0)), WithInterval(time.Second))

	clock.advance(2 * time.Second)
	if !p.Tick() {
		t.Fatalf("first window did not report")
	}
	clock.advance(500 * time.Millisecond)
	if p.Tick() {
		t.Fatalf("second window reported after half an interval")
	}
	clock.advance(500 * time.Millisecond)
	if !p.Tick() {
		t.Fatalf("second window did not report")
	}
	if got := p.Last().Frames; got != 2 {
		t.Fatalf("Frames = %d, want 2", got)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Fatalf("logged %d lines, want 2", lines)
	}
}

func TestNonPositiveIntervalKeepsDefault(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithInterval(-time.Second))
	if p.updateInterval != DefaultInterval {
		t.Fatalf("updateInterval = %v, want %v", p.updateInterval, DefaultInterval)
	}
}
