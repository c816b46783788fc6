package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingProcessor struct {
	calls int64
}

func (p *countingProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	atomic.AddInt64(&p.calls, 1)
	return 0, nil
}

func (p *countingProcessor) count() int64 {
	return atomic.LoadInt64(&p.calls)
}

func TestScheduler_RunsInitialCheck(t *testing.T) {
	processor := &countingProcessor{}
	s := New(processor, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return processor.count() >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestScheduler_NotifyTriggersCheck(t *testing.T) {
	processor := &countingProcessor{}
	s := New(processor, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Wait for the startup check, then poke the scheduler
	assert.Eventually(t, func() bool {
		return processor.count() >= 1
	}, time.Second, 10*time.Millisecond)

	s.Notify()

	assert.Eventually(t, func() bool {
		return processor.count() >= 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestScheduler_NotifyNeverBlocks(t *testing.T) {
	s := New(&countingProcessor{}, time.Hour)

	// Without a running Run loop nothing drains the channel; repeated
	// notifies must still return immediately.
	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			s.Notify()
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	processor := &countingProcessor{}
	s := New(processor, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
