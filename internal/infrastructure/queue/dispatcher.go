package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/api/metrics"
	"github.com/sustainalink/platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrStopped is returned by Enqueue once the dispatcher has shut down.
var ErrStopped = errors.New("notification dispatcher stopped")

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the recipient, guaranteeing per-recipient delivery order.
type Dispatcher struct {
	workers  []chan ports.Notification
	notifier ports.Notifier
	log      zerolog.Logger

	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.Notification, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Run starts the workers and blocks until ctx is cancelled. Pending
// notifications are drained before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for i, ch := range d.workers {
		i, ch := i, ch
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.runWorker(ctx, i, ch)
		}()
	}

	<-ctx.Done()

	d.mu.Lock()
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	wg.Wait()
	return nil
}

// Enqueue hands n to the worker responsible for its recipient. It blocks only
// while that worker's buffer is full, and gives up when ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, n ports.Notification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	idx := d.shardIndex(n.Recipient)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	depth := metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id))
	// Deliveries started during shutdown still get to finish.
	deliverCtx := context.WithoutCancel(ctx)

	for n := range ch {
		depth.Dec()
		if err := d.notifier.Notify(deliverCtx, n); err != nil {
			metrics.NotificationsProcessedTotal.WithLabelValues(string(n.Kind), "failed").Inc()
			d.log.Error().Err(err).
				Str("kind", string(n.Kind)).
				Int("worker_id", id).
				Msg("notification delivery failed")
			continue
		}
		metrics.NotificationsProcessedTotal.WithLabelValues(string(n.Kind), "delivered").Inc()
	}
}
