package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/render-status/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider is a StatusProvider that counts calls.
type countingProvider struct {
	calls atomic.Int64
}

func (c *countingProvider) Snapshot(ctx context.Context) models.Snapshot {
	c.calls.Add(1)
	return models.Snapshot{TakenAt: time.Now()}
}

func TestPoller_EmitsImmediately(t *testing.T) {
	provider := &countingProvider{}
	got := make(chan models.Snapshot, 1)

	p := NewPoller(provider, func(s models.Snapshot) {
		select {
		case got <- s:
		default:
		}
	})
	p.Start(context.Background(), time.Hour) // long interval: only the initial emit matters
	defer p.Stop()

	select {
	case s := <-got:
		assert.False(t, s.TakenAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered after Start")
	}
}

func TestPoller_EmitsOnInterval(t *testing.T) {
	provider := &countingProvider{}
	var delivered atomic.Int64

	p := NewPoller(provider, func(models.Snapshot) { delivered.Add(1) })
	p.Start(context.Background(), 10*time.Millisecond)
	defer p.Stop()

	require.Eventually(t, func() bool {
		return delivered.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPoller_StopTerminates(t *testing.T) {
	provider := &countingProvider{}
	p := NewPoller(provider, func(models.Snapshot) {})

	p.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	after := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, provider.calls.Load(), "poller kept producing after Stop")
}

func TestPoller_StopWithoutStartIsNoop(t *testing.T) {
	p := NewPoller(&countingProvider{}, func(models.Snapshot) {})
	p.Stop() // must not panic or block
}

func TestPoller_ContextCancelTerminates(t *testing.T) {
	provider := &countingProvider{}
	ctx, cancel := context.WithCancel(context.Background())

	p := NewPoller(provider, func(models.Snapshot) {})
	p.Start(ctx, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, provider.calls.Load(), "poller kept producing after ctx cancel")

	p.Stop()
}
