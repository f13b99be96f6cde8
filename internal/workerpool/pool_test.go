package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_RunsAllTasks(t *testing.T) {
	pool := New(4, 16)
	var ran atomic.Int64
	for i := 0; i < 16; i++ {
		pool.Submit(func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	pool.Close()

	var results int
	for range pool.Run(context.Background()) {
		results++
	}
	if ran.Load() != 16 || results != 16 {
		t.Fatalf("ran %d, results %d, want 16", ran.Load(), results)
	}
}

func TestPool_PropagatesErrors(t *testing.T) {
	pool := New(2, 4)
	boom := errors.New("boom")
	pool.Submit(func(context.Context) error { return boom })
	pool.Submit(func(context.Context) error { return nil })
	pool.Close()

	var failed int
	for r := range pool.Run(context.Background()) {
		if r.Err != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
}

func TestPool_CancelStopsWorkers(t *testing.T) {
	pool := New(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		for range pool.Run(ctx) {
		}
		close(done)
	}()
	<-done
}
