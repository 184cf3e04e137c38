// internal/app/system/workers/eventrecorder.go
package workers

import (
	"context"
	"sync"

	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/dalemusser/mlhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// EventSink persists one host event.
type EventSink interface {
	Insert(ctx context.Context, e pwa.Event) error
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ctx context.Context, e pwa.Event) error

func (f EventSinkFunc) Insert(ctx context.Context, e pwa.Event) error { return f(ctx, e) }

// EventRecorder is a background worker that writes host events to a sink
// off the request path. Events arriving while the queue is full are dropped
// and logged.
type EventRecorder struct {
	sink   EventSink
	log    *zap.Logger
	queue  chan pwa.Event
	stopCh chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewEventRecorder creates a recorder with a queue of the given size.
func NewEventRecorder(sink EventSink, logger *zap.Logger, queueSize int) *EventRecorder {
	if queueSize < 1 {
		queueSize = 1
	}
	return &EventRecorder{
		sink:   sink,
		log:    logger,
		queue:  make(chan pwa.Event, queueSize),
		stopCh: make(chan struct{}),
	}
}

// Start begins the background write loop.
func (w *EventRecorder) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("host event recorder started", zap.Int("queue_size", cap(w.queue)))
}

// Enqueue hands e to the worker without blocking. It is shaped to be passed
// to pwa.Bus.Subscribe.
func (w *EventRecorder) Enqueue(e pwa.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.queue <- e:
	default:
		w.log.Warn("host event queue full; dropping event", zap.String("kind", string(e.Kind)))
	}
}

// Stop signals the worker to stop, writes any queued events, and waits for
// it to finish.
func (w *EventRecorder) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()

	w.wg.Wait()
	w.log.Info("host event recorder stopped")
}

func (w *EventRecorder) run() {
	defer w.wg.Done()
	for {
		select {
		case e := <-w.queue:
			w.write(e)
		case <-w.stopCh:
			w.drain()
			return
		}
	}
}

func (w *EventRecorder) drain() {
	for {
		select {
		case e := <-w.queue:
			w.write(e)
		default:
			return
		}
	}
}

func (w *EventRecorder) write(e pwa.Event) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Short(), w.log, "record host event")
	defer cancel()

	if err := w.sink.Insert(ctx, e); err != nil {
		w.log.Error("failed to record host event",
			zap.String("kind", string(e.Kind)),
			zap.Error(err))
	}
}
