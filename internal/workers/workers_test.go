// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestWorkers_Run_ReturnsError(t *testing.T) {
	boom := errors.New("boom")
	ws := NewWorkers(&mockWorker{}, &mockWorker{err: boom})

	if err := ws.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}

func TestWorkers_Run_ErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &blockingWorker{}

	ws := NewWorkers(blocking, &mockWorker{err: boom})
	err := ws.Run(context.Background())

	if !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
	if !blocking.stopped.Load() {
		t.Error("expected blocking worker to observe cancellation")
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	for range 3 {
		if err := ws.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := w.runCount.Load(); got != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", got)
	}
}

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	b.stopped.Store(true)
	return nil
}
