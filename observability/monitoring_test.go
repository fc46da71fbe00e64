package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringWorker_SamplesUntilCancelled(t *testing.T) {
	req := require.New(t)
	queue := make(chan struct{}, 4)
	queue <- struct{}{}
	queue <- struct{}{}

	worker := NewMonitoringWorker(logs.GetLoggerFromLevel(slog.LevelError), 10*time.Millisecond,
		func() (int, int) { return len(queue), cap(queue) })
	req.True(worker.Latest().SampledAt.IsZero())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	req.Eventually(func() bool {
		return !worker.Latest().SampledAt.IsZero()
	}, time.Second, 5*time.Millisecond)

	snap := worker.Latest()
	req.Equal(2, snap.AuditQueue)
	req.Equal(4, snap.AuditCapacity)
	req.Positive(snap.Goroutines)

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestMonitoringWorker_NilProbe(t *testing.T) {
	req := require.New(t)
	worker := NewMonitoringWorker(logs.GetLoggerFromLevel(slog.LevelError), time.Hour, nil)
	worker.sample()
	snap := worker.Latest()
	req.Zero(snap.AuditQueue)
	req.Zero(snap.AuditCapacity)
	req.False(snap.SampledAt.IsZero())
}
