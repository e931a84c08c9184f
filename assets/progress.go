// Package assets loads the demo's data files: yaml prefabs, PNG textures
// and yaml UI layouts, with progress tracking and fsnotify hot reload.
package assets

import "sync"

// Completion is the aggregate state of a batch of tracked loads.
type Completion int

const (
	CompletionLoading Completion = iota
	CompletionComplete
	CompletionFailed
)

func (c Completion) String() string {
	switch c {
	case CompletionLoading:
		return "loading"
	case CompletionComplete:
		return "complete"
	case CompletionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProgressCounter tracks a batch of asset loads. Loads are started on the
// caller's goroutine and finished (or failed) from loader goroutines, so
// all methods are safe for concurrent use.
type ProgressCounter struct {
	mu       sync.Mutex
	started  int
	finished int
	errs     []error
}

// Start records that one more load has begun.
func (p *ProgressCounter) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started++
}

// Finish records one successful load.
func (p *ProgressCounter) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished++
}

// Fail records one failed load.
func (p *ProgressCounter) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished++
	p.errs = append(p.errs, err)
}

// Complete reports the batch state: Failed once any load has failed,
// Loading while loads are outstanding, Complete otherwise.
func (p *ProgressCounter) Complete() Completion {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.errs) > 0 {
		return CompletionFailed
	}
	if p.finished < p.started {
		return CompletionLoading
	}
	return CompletionComplete
}

// Errors returns the collected load errors.
func (p *ProgressCounter) Errors() []error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]error(nil), p.errs...)
}
