package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoller_ReturnsInterface(t *testing.T) {
	job := NewPoller(func() {})
	require.NotNil(t, job)

	var _ PollJob = job
}

func TestPoller_Start_InvokesFnRepeatedly(t *testing.T) {
	var calls atomic.Int64
	job := NewPoller(func() { calls.Add(1) })

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestPoller_Stop_HaltsTicking(t *testing.T) {
	var calls atomic.Int64
	job := NewPoller(func() { calls.Add(1) })

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestPoller_Stop_BeforeStartIsSafe(t *testing.T) {
	job := NewPoller(func() {})
	assert.NotPanics(t, job.Stop)
}

func TestPoller_Restart_ReplacesPreviousRun(t *testing.T) {
	var calls atomic.Int64
	job := NewPoller(func() { calls.Add(1) })

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)
}

func TestPoller_ContextCancelStopsLoop(t *testing.T) {
	var calls atomic.Int64
	job := NewPoller(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestWorkers_RunStartsEveryWorker(t *testing.T) {
	var ran []string
	first := workerFunc(func() { ran = append(ran, "first") })
	second := workerFunc(func() { ran = append(ran, "second") })

	NewWorkers(first, second).Run()
	assert.Equal(t, []string{"first", "second"}, ran)
}

type workerFunc func()

func (f workerFunc) Run() { f() }
