package timer

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vango-dev/notifier/internal/errors"
)

// DefaultQueueSize is the default capacity of the loop's callback queue.
const DefaultQueueSize = 64

// Loop is a single-goroutine event loop implementing Scheduler.
type Loop struct {
	queue   chan func()
	done    chan struct{}
	stop    sync.Once
	running atomic.Bool
	logger  *slog.Logger
	now     func() time.Time
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for recovered callback panics.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithQueueSize sets the callback queue capacity.
func WithQueueSize(n int) LoopOption {
	return func(l *Loop) {
		if n > 0 {
			l.queue = make(chan func(), n)
		}
	}
}

// NewLoop creates a stopped-until-Run loop.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		queue:  make(chan func(), DefaultQueueSize),
		done:   make(chan struct{}),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now implements Scheduler.
func (l *Loop) Now() time.Time { return l.now() }

// Post queues fn to run on the loop goroutine. It reports false if the loop
// has been stopped. Post blocks while the queue is full, so callbacks must
// not post large bursts to their own loop.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes posted callbacks until ctx is done or Stop is called.
// Callbacks still queued when the loop stops are dropped.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("N031")
	}
	defer l.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			l.invoke(fn)
		}
	}
}

// Stop stops the loop. It is safe to call more than once and from any
// goroutine.
func (l *Loop) Stop() {
	l.stop.Do(func() { close(l.done) })
}

// Done is closed once the loop is stopped.
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("timer: callback panicked", "panic", r)
		}
	}()
	fn()
}

// loopTimer is shared by one-shot and recurring timers. The stopped flag is
// checked on the loop goroutine right before the callback runs, so a
// callback posted before Stop is still dropped.
type loopTimer struct {
	stopped atomic.Bool
	fired   atomic.Bool
	cancel  func() bool
}

func (t *loopTimer) Stop() bool {
	if !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	t.cancel()
	return !t.fired.Load()
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	rt := time.AfterFunc(d, func() {
		l.Post(func() {
			if t.stopped.Load() {
				return
			}
			t.fired.Store(true)
			t.stopped.Store(true)
			fn()
		})
	})
	t.cancel = rt.Stop
	return t
}

// Every implements Scheduler.
func (l *Loop) Every(period time.Duration, fn func()) Timer {
	t := &loopTimer{}
	ticker := time.NewTicker(period)
	quit := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Post(func() {
					if t.stopped.Load() {
						return
					}
					fn()
				})
			case <-quit:
				return
			case <-l.done:
				return
			}
		}
	}()

	t.cancel = func() bool {
		once.Do(func() { close(quit) })
		return true
	}
	return t
}
