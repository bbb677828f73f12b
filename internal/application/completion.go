package application

import (
	"context"
	"sync"

	"native-ai-bridge/internal/domain"
)

// completion delivers one outcome to its callback, exactly once
type completion struct {
	once     sync.Once
	callback domain.CompletionFunc
}

func newCompletion(callback domain.CompletionFunc) *completion {
	return &completion{callback: callback}
}

// resolve hands the outcome to the callback on the first call only.
// It reports whether this call delivered.
func (c *completion) resolve(outcome domain.GenerationOutcome) (delivered bool) {
	c.once.Do(func() {
		delivered = true
		if c.callback != nil {
			c.callback(outcome)
		}
	})
	return delivered
}

// Future is a one-shot result channel for a generation outcome.
// Any number of goroutines may wait on it.
type Future struct {
	once    sync.Once
	done    chan struct{}
	outcome domain.GenerationOutcome
}

// NewFuture creates an unresolved future
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete resolves the future. Later calls are ignored.
// Its signature matches domain.CompletionFunc.
func (f *Future) Complete(outcome domain.GenerationOutcome) {
	f.once.Do(func() {
		f.outcome = outcome
		close(f.done)
	})
}

// Wait blocks until the future resolves or ctx ends.
// Giving up on the wait does not cancel the generation.
func (f *Future) Wait(ctx context.Context) (domain.GenerationOutcome, error) {
	select {
	case <-f.done:
		return f.outcome, nil
	case <-ctx.Done():
		return domain.GenerationOutcome{}, ctx.Err()
	}
}
