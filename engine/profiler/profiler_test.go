package profiler

import (
	"testing"
	"time"
)

func TestTickAggregatesAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetLogging(false)
	p.SetInterval(10 * time.Millisecond)

	if p.Tick() {
		t.Error("expected no aggregation before the interval elapses")
	}
	if p.FPS() != 0 {
		t.Errorf("expected zero FPS before the first interval, got %f", p.FPS())
	}

	time.Sleep(15 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected aggregation after the interval elapsed")
	}
	if p.FPS() <= 0 {
		t.Errorf("expected a positive frame rate, got %f", p.FPS())
	}
}
