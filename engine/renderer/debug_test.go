package renderer

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestDebugLevelMapping(t *testing.T) {
	cases := []struct {
		wgpu wgpu.LogLevel
		want DebugLevel
	}{
		{wgpu.LogLevelError, DebugLevelError},
		{wgpu.LogLevelWarn, DebugLevelWarn},
		{wgpu.LogLevelInfo, DebugLevelInfo},
		{wgpu.LogLevelDebug, DebugLevelDebug},
		{wgpu.LogLevelTrace, DebugLevelTrace},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			if got := debugLevelFromWGPU(tc.wgpu); got != tc.want {
				t.Fatalf("debugLevelFromWGPU(%v) = %v, want %v", tc.wgpu, got, tc.want)
			}
			if got := wgpuLogLevel(tc.want); got != tc.wgpu {
				t.Fatalf("wgpuLogLevel(%v) = %v, want %v", tc.want, got, tc.wgpu)
			}
		})
	}
}

func TestLogDebugObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := LogDebugObserver(log.New(&buf, "", 0))
	obs.Observe(DebugMessage{Level: DebugLevelError, Text: "validation failed"})
	if got := strings.TrimSpace(buf.String()); got != "[GPU] error: validation failed" {
		t.Fatalf("log = %q", got)
	}
}

func TestRouteDebugMessage(t *testing.T) {
	var mu sync.Mutex
	var got []DebugMessage
	debugRouter.mu.Lock()
	prev := debugRouter.observer
	debugRouter.observer = DebugObserverFunc(func(msg DebugMessage) {
		mu.Lock()
		got = append(got, msg)
		mu.Unlock()
	})
	debugRouter.mu.Unlock()
	t.Cleanup(func() {
		debugRouter.mu.Lock()
		debugRouter.observer = prev
		debugRouter.mu.Unlock()
	})

	routeDebugMessage(DebugMessage{Level: DebugLevelWarn, Text: "slow path"})
	if len(got) != 1 || got[0].Text != "slow path" || got[0].Level != DebugLevelWarn {
		t.Fatalf("observed = %+v", got)
	}
}

func TestDebugLevelString(t *testing.T) {
	if DebugLevel(42).String() != "unknown" {
		t.Fatalf("unexpected name for out-of-range level")
	}
}
