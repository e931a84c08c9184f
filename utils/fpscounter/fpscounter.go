// Package fpscounter maintains a sampled frames-per-second estimate over
// a sliding window of frame deltas.
package fpscounter

import "github.com/ajwinter/amethyst/ecs"

const defaultWindow = 20

// FPSCounter is a singleton holding a fixed window of recent frame
// deltas. SampledFPS averages over the window, so a single slow frame
// does not swing the readout.
type FPSCounter struct {
	samples []float64
	next    int
	filled  int
}

// NewFPSCounter creates a counter averaging over window frames.
func NewFPSCounter(window int) FPSCounter {
	if window <= 0 {
		window = defaultWindow
	}
	return FPSCounter{samples: make([]float64, window)}
}

// Push records one frame delta in seconds. Zero deltas are ignored so
// render-only passes do not skew the estimate.
func (c *FPSCounter) Push(dt float64) {
	if dt <= 0 {
		return
	}
	if c.samples == nil {
		*c = NewFPSCounter(defaultWindow)
	}

	c.samples[c.next] = dt
	c.next = (c.next + 1) % len(c.samples)
	if c.filled < len(c.samples) {
		c.filled++
	}
}

// SampledFPS returns the windowed frames-per-second estimate, or 0 before
// any frame has been recorded.
func (c *FPSCounter) SampledFPS() float64 {
	if c.filled == 0 {
		return 0
	}

	var total float64
	for i := 0; i < c.filled; i++ {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.filled) / total
}

// CounterSystem feeds each tick's delta into the FPSCounter singleton.
// Systems that read the sample declare a RunAfter dependency on it.
type CounterSystem struct {
	Counter ecs.Singleton[FPSCounter]
}

func (s *CounterSystem) Execute(frame *ecs.UpdateFrame) {
	s.Counter.Get().Push(frame.DeltaTime)
}
