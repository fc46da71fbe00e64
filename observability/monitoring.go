package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Snapshot aggregates the process metrics shown on the debug page.
type Snapshot struct {
	AllocMemMb    uint64    `json:"alloc_mem_mb"`
	NumGC         uint32    `json:"num_gc"`
	Goroutines    int       `json:"goroutines"`
	CPUPercent    float64   `json:"cpu_percent"`
	RAMPercent    float32   `json:"ram_percent"`
	AuditQueue    int       `json:"audit_queue"`
	AuditCapacity int       `json:"audit_capacity"`
	SampledAt     time.Time `json:"sampled_at"`
}

// QueueProbe returns the current length and capacity of a buffered queue.
type QueueProbe func() (size, capacity int)

// MonitoringWorker samples the server process on every tick.
type MonitoringWorker struct {
	log      *slog.Logger
	interval time.Duration
	queue    QueueProbe
	pid      int32

	mu     sync.RWMutex
	latest Snapshot
}

func NewMonitoringWorker(log *slog.Logger, interval time.Duration, queue QueueProbe) *MonitoringWorker {
	return &MonitoringWorker{
		log:      log,
		interval: interval,
		queue:    queue,
		pid:      int32(os.Getpid()),
	}
}

func (w *MonitoringWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.sample()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping monitoring worker")
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *MonitoringWorker) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	snap := Snapshot{
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
		SampledAt:  time.Now().UTC(),
	}
	if w.queue != nil {
		snap.AuditQueue, snap.AuditCapacity = w.queue()
	}

	p, err := process.NewProcess(w.pid)
	if err != nil {
		w.log.Debug("Error while retrieving process", "pid", w.pid, "err", err)
	} else {
		if cpu, err := p.CPUPercent(); err != nil {
			w.log.Debug("Error while finding process cpu usage", "err", err)
		} else {
			snap.CPUPercent = cpu
		}
		if ram, err := p.MemoryPercent(); err != nil {
			w.log.Debug("Error while finding process ram usage", "err", err)
		} else {
			snap.RAMPercent = ram
		}
	}

	w.mu.Lock()
	w.latest = snap
	w.mu.Unlock()

	if snap.AuditCapacity > 0 && snap.AuditQueue == snap.AuditCapacity {
		w.log.Warn("Audit queue is full, events are being dropped", "capacity", snap.AuditCapacity)
	}
	w.log.Debug("Stats updated", "mem_mb", snap.AllocMemMb, "cpu", snap.CPUPercent, "audit_queue", snap.AuditQueue)
}

// Latest returns the last sample. It is zero until the worker has run once.
func (w *MonitoringWorker) Latest() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}
