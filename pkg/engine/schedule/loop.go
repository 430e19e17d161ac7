package schedule

import (
	"context"
	"sync"
	"time"
)

// DefaultQueueSize is the event buffer used when NewLoop is given a non-positive size.
const DefaultQueueSize = 64

// Loop is a real-time Scheduler that serialises timer callbacks and posted
// events onto whichever goroutine calls Run or Drain.
type Loop struct {
	events    chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates a loop with the given event buffer size.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		events: make(chan func(), queueSize),
		done:   make(chan struct{}),
	}
}

// Now implements Scheduler.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Post queues fn for execution on the loop goroutine. It blocks while the
// queue is full and returns false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc implements Scheduler. fn runs on the loop goroutine.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	t := &task{once: true}
	timer := time.AfterFunc(d, func() {
		l.Post(func() { t.run(fn) })
	})
	t.cancel = func() { timer.Stop() }
	return t
}

// Every implements Scheduler. fn runs on the loop goroutine once per period.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	t := &task{}
	ticker := time.NewTicker(d)
	stop := make(chan struct{})
	t.cancel = func() {
		ticker.Stop()
		close(stop)
	}

	go func() {
		for {
			select {
			case <-ticker.C:
				l.Post(func() { t.run(fn) })
			case <-stop:
				return
			case <-l.done:
				ticker.Stop()
				return
			}
		}
	}()

	return t
}

// Run processes events one at a time, in arrival order, until ctx is done
// or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.events:
			fn()
		}
	}
}

// Drain runs every queued event without blocking and returns how many ran.
// Intended for frame-driven hosts that cannot hand a goroutine to Run.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.events:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close stops the loop. Pending timers stop posting and Run returns.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}
