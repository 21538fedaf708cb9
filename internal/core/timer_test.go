package core

import (
	"testing"
	"time"
)

func TestThrottleCarriesFractionalSteps(t *testing.T) {
	th := NewThrottle(2)
	start := time.Unix(0, 0)
	if n, _ := th.Due(start); n != 0 {
		t.Fatalf("priming call should not schedule steps, got %d", n)
	}

	n, delta := th.Due(start.Add(750 * time.Millisecond))
	if n != 1 || delta != 750*time.Millisecond {
		t.Fatalf("expected 1 step over 750ms, got %d (delta %v)", n, delta)
	}
	// 0.5 carried over plus 0.5 from the next 250ms.
	if n, _ := th.Due(start.Add(time.Second)); n != 1 {
		t.Fatalf("expected carried fraction to yield 1 step, got %d", n)
	}
}

func TestThrottleResyncAndNegativeRate(t *testing.T) {
	th := NewThrottle(-5)
	if th.Rate() != 0 {
		t.Fatalf("negative rate should clamp to 0, got %v", th.Rate())
	}
	th.SetRate(4)
	start := time.Unix(10, 0)
	th.Due(start)
	th.Resync()
	if n, _ := th.Due(start.Add(time.Second)); n != 0 {
		t.Fatalf("Resync should restart the clock, got %d steps", n)
	}
	if n, _ := th.Due(start.Add(time.Second + 250*time.Millisecond)); n != 1 {
		t.Fatalf("expected 1 step after 250ms at 4/s, got %d", n)
	}
}
