package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/render-status/models"
)

const defaultPollInterval = 10 * time.Second

type poller struct {
	status StatusProvider
	notify func(models.Snapshot)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates a PollJob that produces snapshots from status and hands
// each one to notify. The job is idle until Start is called. notify is
// invoked from the poll goroutine; the callback owns any hand-off to other
// goroutines (e.g. a bubbletea program's Send).
func NewPoller(status StatusProvider, notify func(models.Snapshot)) PollJob {
	return &poller{status: status, notify: notify}
}

// Start implements [PollJob]. It stops any previously running loop, then
// launches a background goroutine that produces one snapshot immediately
// and one per interval after that. If interval is zero or negative it
// defaults to 10 seconds. The goroutine exits when ctx is cancelled or Stop
// is called.
func (p *poller) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		p.notify(p.status.Snapshot(jobCtx))

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.notify(p.status.Snapshot(jobCtx))
			}
		}
	}()
}

// Stop implements [PollJob]. It cancels the poll goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (p *poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
