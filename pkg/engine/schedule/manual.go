package schedule

import (
	"time"
)

// Manual is a Scheduler driven by an explicit clock. Callbacks run
// synchronously inside Advance, so tests observe every transition in order.
type Manual struct {
	now     time.Time
	seq     uint64
	entries []*manualEntry
}

type manualEntry struct {
	at     time.Time
	period time.Duration
	seq    uint64
	fn     func()
	t      *task
}

// NewManual creates a manual scheduler starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements Scheduler.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Handle {
	t := &task{once: true}
	m.add(&manualEntry{at: m.now.Add(d), fn: fn, t: t})
	return t
}

// Every implements Scheduler. The period must be positive.
func (m *Manual) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		panic("schedule: Every needs a positive period")
	}
	t := &task{}
	m.add(&manualEntry{at: m.now.Add(d), period: d, fn: fn, t: t})
	return t
}

func (m *Manual) add(e *manualEntry) {
	m.seq++
	e.seq = m.seq
	m.entries = append(m.entries, e)
}

// Advance moves the clock forward by d, running every callback that falls
// due in time order. Callbacks due at the same instant run in scheduling
// order. Returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now.Add(d)
	fired := 0

	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.at
		if e.period > 0 {
			e.at = e.at.Add(e.period)
			m.seq++
			e.seq = m.seq
		} else {
			m.remove(e)
		}
		e.t.run(e.fn)
		fired++
	}

	m.now = target
	return fired
}

// Pending returns the number of live scheduled callbacks.
func (m *Manual) Pending() int {
	m.prune()
	return len(m.entries)
}

func (m *Manual) nextDue(target time.Time) *manualEntry {
	m.prune()
	var next *manualEntry
	for _, e := range m.entries {
		if e.at.After(target) {
			continue
		}
		if next == nil || e.at.Before(next.at) || (e.at.Equal(next.at) && e.seq < next.seq) {
			next = e
		}
	}
	return next
}

func (m *Manual) prune() {
	live := m.entries[:0]
	for _, e := range m.entries {
		if !e.t.stopped.Load() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.entries); i++ {
		m.entries[i] = nil
	}
	m.entries = live
}

func (m *Manual) remove(target *manualEntry) {
	for i, e := range m.entries {
		if e == target {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}
