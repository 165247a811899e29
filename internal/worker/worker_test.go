package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	svcmocks "escrow-service/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPeriodicWorker_RunsUntilStopped(t *testing.T) {
	var calls atomic.Int32
	task := func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 1, nil
	}

	w := NewPeriodicWorker("test", task, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	w.Stop()
	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())

	w.Stop()
}

func TestPeriodicWorker_KeepsRunningAfterFailure(t *testing.T) {
	var calls atomic.Int32
	task := func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("database unavailable")
		}
		return 0, nil
	}

	w := NewPeriodicWorker("flaky", task, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPeriodicWorker_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewPeriodicWorker("ctx", func(context.Context) (int, error) { return 0, nil }, time.Hour, zerolog.Nop())
	w.Start(ctx)

	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not exit after context cancellation")
	}
}

func TestExpiryWorker_CallsExpiryService(t *testing.T) {
	var calls atomic.Int32
	mockExpiry := svcmocks.NewExpiryService(t)
	mockExpiry.On("ExpireStaleTransactions", mock.Anything).
		Run(func(mock.Arguments) { calls.Add(1) }).
		Return(2, nil)

	w := NewExpiryWorker(mockExpiry, 10*time.Millisecond, zerolog.Nop())
	assert.Equal(t, "expiry", w.Name())

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestAssignmentWorker_CallsDisputeService(t *testing.T) {
	mockDisputes := svcmocks.NewDisputeService(t)
	var calls atomic.Int32
	mockDisputes.On("AssignPending", mock.Anything).
		Run(func(mock.Arguments) { calls.Add(1) }).
		Return(0, nil)

	w := NewAssignmentWorker(mockDisputes, 10*time.Millisecond, zerolog.Nop())
	assert.Equal(t, "dispute_assignment", w.Name())

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	w.Stop()
}
