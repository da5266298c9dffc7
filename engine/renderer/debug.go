package renderer

import (
	"log"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// DebugLevel is the severity of a GPU driver message. Lower values are more severe.
type DebugLevel int

const (
	DebugLevelError DebugLevel = iota
	DebugLevelWarn
	DebugLevelInfo
	DebugLevelDebug
	DebugLevelTrace
)

// String returns the lower-case level name.
func (l DebugLevel) String() string {
	switch l {
	case DebugLevelError:
		return "error"
	case DebugLevelWarn:
		return "warn"
	case DebugLevelInfo:
		return "info"
	case DebugLevelDebug:
		return "debug"
	case DebugLevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// DebugMessage is one message reported by the GPU driver.
type DebugMessage struct {
	Level DebugLevel
	Text  string
}

// DebugObserver receives GPU driver messages. Observe may be called from a driver thread,
// so implementations must be safe for concurrent use.
type DebugObserver interface {
	Observe(msg DebugMessage)
}

// DebugObserverFunc adapts a function to a DebugObserver.
type DebugObserverFunc func(msg DebugMessage)

// Observe calls f(msg).
func (f DebugObserverFunc) Observe(msg DebugMessage) {
	f(msg)
}

// LogDebugObserver returns the default observer, which writes every message to logger
// with a "[GPU]" prefix. A nil logger uses the standard logger.
//
// Parameters:
//   - logger: destination logger or nil
//
// Returns:
//   - DebugObserver: the logging observer
func LogDebugObserver(logger *log.Logger) DebugObserver {
	if logger == nil {
		logger = log.Default()
	}
	return DebugObserverFunc(func(msg DebugMessage) {
		logger.Printf("[GPU] %s: %s", msg.Level, msg.Text)
	})
}

// debugLevelFromWGPU maps a wgpu log level onto DebugLevel. Unknown levels count as trace.
func debugLevelFromWGPU(level wgpu.LogLevel) DebugLevel {
	switch level {
	case wgpu.LogLevelError:
		return DebugLevelError
	case wgpu.LogLevelWarn:
		return DebugLevelWarn
	case wgpu.LogLevelInfo:
		return DebugLevelInfo
	case wgpu.LogLevelDebug:
		return DebugLevelDebug
	default:
		return DebugLevelTrace
	}
}

// wgpuLogLevel returns the wgpu filter that passes messages at or above the threshold severity.
func wgpuLogLevel(threshold DebugLevel) wgpu.LogLevel {
	switch threshold {
	case DebugLevelError:
		return wgpu.LogLevelError
	case DebugLevelWarn:
		return wgpu.LogLevelWarn
	case DebugLevelInfo:
		return wgpu.LogLevelInfo
	case DebugLevelDebug:
		return wgpu.LogLevelDebug
	default:
		return wgpu.LogLevelTrace
	}
}

// debugRouter holds the observer the process-wide wgpu log callback forwards to.
// wgpu has a single global callback, so the last renderer created wins.
var debugRouter struct {
	mu       sync.RWMutex
	observer DebugObserver
	once     sync.Once
}

// routeDebugMessage forwards a message to the installed observer, if any.
func routeDebugMessage(msg DebugMessage) {
	debugRouter.mu.RLock()
	observer := debugRouter.observer
	debugRouter.mu.RUnlock()
	if observer != nil {
		observer.Observe(msg)
	}
}

// installDebugObserver points the wgpu log callback at observer and sets the severity filter.
// A nil observer silences driver messages.
func installDebugObserver(observer DebugObserver, threshold DebugLevel) {
	debugRouter.mu.Lock()
	debugRouter.observer = observer
	debugRouter.mu.Unlock()

	debugRouter.once.Do(func() {
		wgpu.SetLogCallback(func(level wgpu.LogLevel, msg string) {
			routeDebugMessage(DebugMessage{Level: debugLevelFromWGPU(level), Text: msg})
		})
	})
	if observer == nil {
		wgpu.SetLogLevel(wgpu.LogLevelOff)
		return
	}
	wgpu.SetLogLevel(wgpuLogLevel(threshold))
}
