package hotkey

import (
	"sync"
	"sync/atomic"
)

// captureState is the machine's single capture slot. open is the occupied
// flag new sessions compare-and-swap against; mu guards the session fields
// and orders Begin/step/cancel from different goroutines.
type captureState struct {
	open   atomic.Bool
	mu     sync.Mutex
	target int
	held   map[Input]bool
}

// BeginCapture opens a listening session that will bind the next fresh
// press to the given slot. At most one session exists machine-wide; a
// second Begin fails with ErrAlreadyCapturing and leaves the first session
// untouched. Inputs already down at Begin time (for example the mouse
// button that clicked the binding widget) are snapshotted and excluded
// until released, so held-over input never self-binds.
func (m *Machine) BeginCapture(i int) error {
	if i < 0 || i >= m.Slots() {
		return ErrInvalidIndex
	}
	m.cap.mu.Lock()
	defer m.cap.mu.Unlock()
	if !m.cap.open.CompareAndSwap(false, true) {
		return ErrAlreadyCapturing
	}
	m.cap.target = i
	m.cap.held = make(map[Input]bool)
	for _, b := range m.src.Inputs() {
		if m.src.IsDown(b.Input) {
			m.cap.held[b.Input] = true
		}
	}
	return nil
}

// Capturing reports the open session's target slot, if a session is
// listening.
func (m *Machine) Capturing() (int, bool) {
	m.cap.mu.Lock()
	defer m.cap.mu.Unlock()
	if !m.cap.open.Load() {
		return 0, false
	}
	return m.cap.target, true
}

// CancelCapture closes an open session without changing the target's
// binding. Safe to call when no session is open.
func (m *Machine) CancelCapture() {
	m.cap.mu.Lock()
	if m.cap.open.Load() {
		m.closeCaptureLocked()
	}
	m.cap.mu.Unlock()
}

// stepCapture advances an open session by one tick and reports whether a
// session owned the tick. Escape is polled first and cancels; otherwise the
// bindable table is scanned in enumeration order and the first input that
// is down now, absent from the Begin snapshot, and not Escape wins. The
// scan order makes resolution deterministic when several inputs go down in
// the same tick.
func (m *Machine) stepCapture() bool {
	m.cap.mu.Lock()
	defer m.cap.mu.Unlock()
	if !m.cap.open.Load() {
		return false
	}
	if m.src.IsDown(escapeInput) {
		m.closeCaptureLocked()
		return true
	}
	for _, b := range m.src.Inputs() {
		in := b.Input
		if in == escapeInput {
			continue
		}
		if !m.src.IsDown(in) {
			// Released since Begin: a later press may win.
			delete(m.cap.held, in)
			continue
		}
		if m.cap.held[in] {
			continue
		}
		m.installCaptured(m.cap.target, in)
		m.closeCaptureLocked()
		return true
	}
	return true
}

// installCaptured writes the resolved binding. The winning input is down by
// definition, so the edge memory is seeded down and a Toggle slot will not
// flip until the input is released and pressed again.
func (m *Machine) installCaptured(i int, in Input) {
	m.mu.Lock()
	m.recs[i].binding = in
	m.recs[i].bound = true
	m.recs[i].wasDown = true
	m.mu.Unlock()
}

func (m *Machine) closeCaptureLocked() {
	m.cap.held = nil
	m.cap.open.Store(false)
}
