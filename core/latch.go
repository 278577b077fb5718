package core

// Latch is the CPU side of a wait on a flag set by an interrupt handler.
type Latch interface {
	// Mask disables interrupts and returns the previous state.
	Mask() uintptr
	// Unmask restores the state returned by Mask. Pending handlers run here.
	Unmask(state uintptr)
	// Latched reports whether the handler has set the flag.
	Latched() bool
	// Sleep waits for an interrupt. A pending interrupt ends it even while
	// interrupts are masked.
	Sleep()
}

// WaitLatch blocks until l is latched. The flag is checked and the sleep
// entered with interrupts masked, so an interrupt landing between the two
// stays pending and ends the sleep rather than being missed.
func WaitLatch(l Latch) {
	for {
		state := l.Mask()
		if l.Latched() {
			l.Unmask(state)
			return
		}
		l.Sleep()
		l.Unmask(state)
	}
}
