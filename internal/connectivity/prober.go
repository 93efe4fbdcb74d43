package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
)

const (
	defaultProbeInterval = 10 * time.Second
	defaultProbeTimeout  = 3 * time.Second
)

// Prober polls a [Pinger] and feeds the result into a [Switch].
type Prober struct {
	pinger   Pinger
	sw       *Switch
	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber creates a Prober. Non-positive interval and timeout fall back to
// 10s and 3s. The prober is idle until Start is called.
func NewProber(pinger Pinger, sw *Switch, interval, timeout time.Duration, logger *logger.Logger) *Prober {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{
		pinger:   pinger,
		sw:       sw,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start stops any previous run, probes once right away and then every
// interval until ctx is cancelled or Stop is called.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the polling goroutine and waits for it to exit. Safe to call
// when the prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Probe performs one health check and reports whether the remote store
// answered. A cancelled ctx leaves the state unchanged.
func (p *Prober) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.Ping(probeCtx)
	if ctx.Err() != nil {
		return p.sw.Online()
	}
	if err != nil {
		p.logger.Debug().Str("func", "Prober.Probe").Err(err).Msg("remote store is unreachable")
	}

	online := err == nil
	p.sw.Set(online)
	return online
}
