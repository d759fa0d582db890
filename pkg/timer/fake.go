package timer

import (
	"sort"
	"time"
)

// Fake is a manually advanced Scheduler for tests.
// It is not safe for concurrent use.
type Fake struct {
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	fake    *Fake
	due     time.Time
	period  time.Duration
	fn      func()
	seq     uint64
	stopped bool
}

// NewFake creates a fake clock starting at start. A zero start uses the
// Unix epoch.
func NewFake(start time.Time) *Fake {
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	return &Fake{now: start}
}

// Now implements Scheduler.
func (f *Fake) Now() time.Time { return f.now }

// AfterFunc implements Scheduler.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	return f.add(d, 0, fn)
}

// Every implements Scheduler. Non-positive periods are treated as 1ns.
func (f *Fake) Every(period time.Duration, fn func()) Timer {
	if period <= 0 {
		period = time.Nanosecond
	}
	return f.add(period, period, fn)
}

func (f *Fake) add(d, period time.Duration, fn func()) *fakeTimer {
	if d < 0 {
		d = 0
	}
	f.seq++
	t := &fakeTimer{fake: f, due: f.now.Add(d), period: period, fn: fn, seq: f.seq}
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.fake.prune()
	return true
}

func (f *Fake) prune() {
	live := f.timers[:0]
	for _, t := range f.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(f.timers); i++ {
		f.timers[i] = nil
	}
	f.timers = live
}

// next returns the earliest live timer due at or before limit.
func (f *Fake) next(limit time.Time) *fakeTimer {
	sort.SliceStable(f.timers, func(i, j int) bool {
		a, b := f.timers[i], f.timers[j]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return a.seq < b.seq
	})
	for _, t := range f.timers {
		if t.stopped {
			continue
		}
		if t.due.After(limit) {
			return nil
		}
		return t
	}
	return nil
}

// Advance moves the clock forward by d, firing every timer that comes due
// in order. Callbacks observe Now() equal to their due time and may
// schedule or stop timers; timers they schedule within the window fire too.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		t := f.next(target)
		if t == nil {
			break
		}
		f.now = t.due
		if t.period > 0 {
			t.due = t.due.Add(t.period)
		} else {
			t.stopped = true
			f.prune()
		}
		t.fn()
	}
	f.now = target
}

// Pending returns the number of live timers.
func (f *Fake) Pending() int {
	n := 0
	for _, t := range f.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
