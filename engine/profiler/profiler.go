package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for the render loop.
// Outputs stats to the log at a configurable interval and keeps the most
// recent frame rate available for display (e.g. in the window title).
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	lastFPS        float64
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	logging        bool
}

// NewProfiler creates a new Profiler with stats logging enabled at a
// 1-second interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		logging:        true,
	}
}

// SetInterval sets how often Tick aggregates and reports statistics.
//
// Parameters:
//   - interval: the reporting interval
func (p *Profiler) SetInterval(interval time.Duration) {
	p.updateInterval = interval
}

// SetLogging enables or disables the periodic log line. FPS tracking keeps
// working either way.
//
// Parameters:
//   - enabled: whether to log stats
func (p *Profiler) SetLogging(enabled bool) {
	p.logging = enabled
}

// FPS returns the frame rate measured over the most recently completed
// interval, or 0 before the first interval elapses.
//
// Returns:
//   - float64: the last measured frames per second
func (p *Profiler) FPS() float64 {
	return p.lastFPS
}

// Tick should be called once per rendered frame. When the update interval has
// elapsed it recomputes the frame rate, samples memory statistics, and logs a
// summary line (FPS, heap usage, allocation rate, GC pauses, process memory).
//
// Returns:
//   - bool: true if stats were aggregated this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.lastFPS = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap bytes. TotalAlloc: cumulative heap bytes (tracks churn).
	// Sys: bytes obtained from the OS (actual process footprint).
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses; report the most
	// recent pause and the worst pause since the previous tick.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	if p.logging {
		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			p.lastFPS, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
