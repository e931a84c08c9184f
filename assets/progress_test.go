package assets_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajwinter/amethyst/assets"
)

func TestProgressCounterEmpty(t *testing.T) {
	progress := &assets.ProgressCounter{}

	// Nothing tracked means nothing outstanding.
	assert.Equal(t, assets.CompletionComplete, progress.Complete())
}

func TestProgressCounterLifecycle(t *testing.T) {
	progress := &assets.ProgressCounter{}

	progress.Start()
	progress.Start()
	assert.Equal(t, assets.CompletionLoading, progress.Complete())

	progress.Finish()
	assert.Equal(t, assets.CompletionLoading, progress.Complete())

	progress.Finish()
	assert.Equal(t, assets.CompletionComplete, progress.Complete())
	assert.Empty(t, progress.Errors())
}

func TestProgressCounterFailure(t *testing.T) {
	progress := &assets.ProgressCounter{}

	progress.Start()
	progress.Start()
	progress.Finish()
	progress.Fail(errors.New("texture decode failed"))

	assert.Equal(t, assets.CompletionFailed, progress.Complete())
	assert.Len(t, progress.Errors(), 1)
}

func TestProgressCounterFailureSticks(t *testing.T) {
	progress := &assets.ProgressCounter{}

	progress.Start()
	progress.Fail(errors.New("boom"))
	progress.Start()
	progress.Finish()

	// One failure marks the whole batch failed.
	assert.Equal(t, assets.CompletionFailed, progress.Complete())
}

func TestProgressCounterConcurrent(t *testing.T) {
	progress := &assets.ProgressCounter{}

	const n = 64
	for i := 0; i < n; i++ {
		progress.Start()
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			progress.Finish()
		}()
	}
	wg.Wait()

	assert.Equal(t, assets.CompletionComplete, progress.Complete())
}

func TestCompletionString(t *testing.T) {
	assert.Equal(t, "loading", assets.CompletionLoading.String())
	assert.Equal(t, "complete", assets.CompletionComplete.String())
	assert.Equal(t, "failed", assets.CompletionFailed.String())
}
