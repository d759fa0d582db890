package timer

import (
	"testing"
	"time"
)

func TestFakeAfterFunc(t *testing.T) {
	f := NewFake(time.Time{})
	start := f.Now()
	var firedAt time.Duration
	fired := 0

	f.AfterFunc(100*time.Millisecond, func() {
		fired++
		firedAt = f.Now().Sub(start)
	})

	f.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatal("timer fired early")
	}
	f.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if firedAt != 100*time.Millisecond {
		t.Errorf("fired at %v, want 100ms", firedAt)
	}
	f.Advance(time.Second)
	if fired != 1 {
		t.Error("one-shot timer fired twice")
	}
	if f.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", f.Pending())
	}
	if f.Now().Sub(start) != 1100*time.Millisecond {
		t.Errorf("Now() advanced to %v", f.Now().Sub(start))
	}
}

func TestFakeStop(t *testing.T) {
	f := NewFake(time.Time{})
	fired := false
	tm := f.AfterFunc(time.Second, func() { fired = true })

	if !tm.Stop() {
		t.Error("first Stop() should report true")
	}
	if tm.Stop() {
		t.Error("second Stop() should report false")
	}
	f.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestFakeStopAfterFire(t *testing.T) {
	f := NewFake(time.Time{})
	tm := f.AfterFunc(time.Millisecond, func() {})
	f.Advance(time.Millisecond)
	if tm.Stop() {
		t.Error("Stop() after firing should report false")
	}
}

func TestFakeEvery(t *testing.T) {
	f := NewFake(time.Time{})
	start := f.Now()
	var ticks []time.Duration
	var tm Timer
	tm = f.Every(15*time.Millisecond, func() {
		ticks = append(ticks, f.Now().Sub(start))
		if len(ticks) == 3 {
			tm.Stop()
		}
	})

	f.Advance(time.Second)
	want := []time.Duration{15 * time.Millisecond, 30 * time.Millisecond, 45 * time.Millisecond}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d at %v, want %v", i, ticks[i], want[i])
		}
	}
	if f.Pending() != 0 {
		t.Error("stopped ticker still pending")
	}
}

func TestFakeOrdering(t *testing.T) {
	f := NewFake(time.Time{})
	var order []string

	f.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	f.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	f.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })
	f.AfterFunc(20*time.Millisecond, func() {
		order = append(order, "nested-parent")
		f.AfterFunc(5*time.Millisecond, func() { order = append(order, "nested") })
	})

	f.Advance(50 * time.Millisecond)
	want := []string{"a", "b", "nested-parent", "nested", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestFakeCallbackStopsOtherTimer(t *testing.T) {
	f := NewFake(time.Time{})
	ticks := 0
	ticker := f.Every(10*time.Millisecond, func() { ticks++ })
	f.AfterFunc(25*time.Millisecond, func() { ticker.Stop() })

	f.Advance(100 * time.Millisecond)
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
}
