package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
)

type reconnectSweepJob struct {
	coordinator SyncCoordinator
	monitor     connectivity.Monitor
	logger      *logger.Logger

	mu     sync.Mutex
	events <-chan connectivity.Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReconnectSweepJob creates a job that calls coordinator.Sweep on every
// offline to online transition reported by monitor. The job is idle until
// Start is called.
func NewReconnectSweepJob(coordinator SyncCoordinator, monitor connectivity.Monitor, logger *logger.Logger) ReconnectSweepJob {
	return &reconnectSweepJob{coordinator: coordinator, monitor: monitor, logger: logger}
}

// Start implements ReconnectSweepJob. The monitor is subscribed to once and
// the subscription is reused across restarts. The goroutine exits when ctx
// is cancelled, Stop is called or the monitor closes the event channel.
func (j *reconnectSweepJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	if j.events == nil {
		j.events = j.monitor.Subscribe()
	}
	events := j.events
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		for {
			select {
			case <-jobCtx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !ev.Online {
					j.logger.Info().Str("func", "reconnectSweepJob.Start").Msg("gone offline, using cached trees only")
					continue
				}
				j.sweep(context.WithoutCancel(jobCtx))
			}
		}
	}()
}

// Stop implements ReconnectSweepJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *reconnectSweepJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *reconnectSweepJob) sweep(ctx context.Context) {
	j.logger.Info().Str("func", "reconnectSweepJob.sweep").Msg("back online, starting sweep")

	report, err := j.coordinator.Sweep(ctx)
	if err != nil {
		j.logger.Warn().Str("func", "reconnectSweepJob.sweep").Err(err).Msg("sweep skipped")
		return
	}
	if report.Failed > 0 {
		j.logger.Warn().
			Str("func", "reconnectSweepJob.sweep").
			Int("failed", report.Failed).
			Ints64("failed_ids", report.FailedIDs).
			Msg("sweep finished with failures")
	}
}
