// Package profiler reports frame rate and Go runtime memory statistics for the viewer loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// DefaultInterval is how often stats are reported.
const DefaultInterval = time.Second

// Stats is one report window.
type Stats struct {
	Frames      int
	Elapsed     time.Duration
	FPS         float64
	FrameTime   time.Duration // mean time per frame over the window
	HeapMB      float64
	AllocRateMB float64 // MB/s allocated over the window
	SysMB       float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
}

// Profiler counts frames and reports Stats once per interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now    func() time.Time
	logger *log.Logger
	last   Stats
}

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets the report interval. Values <= 0 keep DefaultInterval.
//
// Parameters:
//   - d: the report interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithLogger sets where reports are written.
//
// Parameters:
//   - l: the destination logger
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLogger(l *log.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock replaces time.Now.
//
// Parameters:
//   - now: the clock function
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a Profiler. The first window starts now.
//
// Parameters:
//   - options: functional options for interval, logger and clock
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: DefaultInterval,
		now:            time.Now,
		logger:         log.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame.
// When the interval has elapsed it gathers Stats, logs them and starts a new window.
//
// Returns:
//   - bool: true if stats were reported this tick
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		Frames:      p.frameCount,
		Elapsed:     elapsed,
		FPS:         float64(p.frameCount) / elapsed.Seconds(),
		FrameTime:   elapsed / time.Duration(p.frameCount),
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:     p.memStats.NumGC,
	}
	s.LastPauseUs, s.MaxPauseUs = gcPauses(&p.memStats, p.lastGCCount)

	p.logger.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, float64(s.FrameTime.Microseconds())/1000, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB)

	p.last = s
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent report, or the zero Stats before the first one.
func (p *Profiler) Last() Stats {
	return p.last
}

// gcPauses returns the latest GC pause and the longest pause since sinceCount, in microseconds.
// PauseNs is a ring of the last 256 pauses.
func gcPauses(m *runtime.MemStats, sinceCount uint32) (lastUs, maxUs uint64) {
	n := m.NumGC
	if n == 0 {
		return 0, 0
	}
	lastUs = m.PauseNs[(n-1)%256] / 1000

	start := sinceCount
	if n-start > 256 {
		start = n - 256
	}
	for i := start; i < n; i++ {
		if pause := m.PauseNs[i%256] / 1000; pause > maxUs {
			maxUs = pause
		}
	}
	return lastUs, maxUs
}
