package core

import "testing"

// cpuModel simulates interrupt masking and one completion interrupt.
type cpuModel struct {
	t *testing.T

	masked  bool
	pending bool // completion raised, handler not yet run
	latched bool // set by the handler

	fireOnCheck int // raise the completion right after this Latched call
	checks      int
	spurious    int // wakeups from unrelated interrupts
	sleeps      int
	hung        bool
}

func (c *cpuModel) raise() {
	c.pending = true
	c.dispatch()
}

func (c *cpuModel) dispatch() {
	if c.pending && !c.masked {
		c.pending = false
		c.latched = true
	}
}

func (c *cpuModel) Mask() uintptr {
	prev := uintptr(0)
	if c.masked {
		prev = 1
	}
	c.masked = true
	return prev
}

func (c *cpuModel) Unmask(state uintptr) {
	c.masked = state == 1
	c.dispatch()
}

func (c *cpuModel) Latched() bool {
	c.checks++
	v := c.latched
	if c.checks == c.fireOnCheck {
		c.raise()
	}
	return v
}

func (c *cpuModel) Sleep() {
	c.sleeps++
	if c.pending {
		return
	}
	if c.spurious > 0 {
		c.spurious--
		return
	}
	// Nothing left to wake the core.
	c.hung = true
	c.latched = true
}

func TestWaitLatchCompletionBetweenCheckAndSleep(t *testing.T) {
	c := &cpuModel{t: t, fireOnCheck: 1}
	WaitLatch(c)
	if c.hung {
		t.Fatal("completion raised after the check was lost; sleep never woke")
	}
	if c.masked {
		t.Error("interrupts left masked")
	}
}

func TestWaitLatchSurvivesSpuriousWakeups(t *testing.T) {
	c := &cpuModel{t: t, fireOnCheck: 4, spurious: 3}
	WaitLatch(c)
	if c.hung {
		t.Fatal("wait hung")
	}
	if c.sleeps != 4 {
		t.Errorf("slept %d times, want 4", c.sleeps)
	}
}

func TestWaitLatchAlreadyLatched(t *testing.T) {
	c := &cpuModel{t: t, latched: true}
	WaitLatch(c)
	if c.sleeps != 0 {
		t.Errorf("slept %d times with the flag already set", c.sleeps)
	}
}
