// Package notifier delivers notification intents after the transaction that produced
// them has committed.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"
)

// Dispatcher is a bounded queue drained by a fixed pool of workers. Notify never
// blocks: when the queue is full the intent is dropped and logged.
type Dispatcher struct {
	gateway notification.Gateway
	timeout time.Duration
	workers int
	queue   chan notification.Intent

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

func NewDispatcher(gateway notification.Gateway, cfg config.NotifyConfig) *Dispatcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Dispatcher{
		gateway: gateway,
		timeout: timeout,
		workers: workers,
		queue:   make(chan notification.Intent, size),
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	slog.Info("notification dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
}

func (d *Dispatcher) Notify(ctx context.Context, intents ...notification.Intent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		slog.WarnContext(ctx, "notification dispatcher stopped, dropping intents", "count", len(intents))
		return
	}
	for _, in := range intents {
		select {
		case d.queue <- in:
		default:
			slog.WarnContext(ctx, "notification queue full, dropping intent",
				"kind", in.Kind,
				"recipient_id", in.RecipientID)
		}
	}
}

// Stop closes the queue and waits for queued intents to drain or ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for in := range d.queue {
		d.deliver(id, in)
	}
}

func (d *Dispatcher) deliver(worker int, in notification.Intent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	defer func() {
		if p := recover(); p != nil {
			slog.Error("notification delivery panicked",
				"worker", worker,
				"kind", in.Kind,
				"recipient_id", in.RecipientID,
				"panic", p)
		}
	}()

	if err := d.gateway.Deliver(ctx, in); err != nil {
		slog.Warn("notification delivery failed",
			"worker", worker,
			"kind", in.Kind,
			"recipient_id", in.RecipientID,
			"error", err.Error())
	}
}
