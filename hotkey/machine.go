package hotkey

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidIndex reports a slot index outside the machine's fixed
	// range. It indicates a host programming error.
	ErrInvalidIndex = errors.New("hotkey: slot index out of range")
	// ErrAlreadyCapturing reports a BeginCapture while another capture
	// session is still listening.
	ErrAlreadyCapturing = errors.New("hotkey: capture already in progress")
)

// Mode selects how a slot's binding state turns into activation.
type Mode uint8

const (
	// ModeOff disables the slot unconditionally.
	ModeOff Mode = iota
	// ModeHold activates while the bound input is held down.
	ModeHold
	// ModeToggle flips the activation latch on each fresh press.
	ModeToggle
	// ModeHoldInverse activates while the bound input is not down.
	ModeHoldInverse
	// ModeAlways activates unconditionally, binding or not.
	ModeAlways
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "Off"
	case ModeHold:
		return "Hold"
	case ModeToggle:
		return "Toggle"
	case ModeHoldInverse:
		return "Hold Inverse"
	case ModeAlways:
		return "Always"
	}
	return "Off"
}

// Modes lists every selectable mode in menu order.
func Modes() []Mode {
	return []Mode{ModeOff, ModeHold, ModeToggle, ModeHoldInverse, ModeAlways}
}

// record is the per-slot state. active and wasDown are only rewritten by
// Update (plus the immediate force-off in SetMode); binding and mode only
// by the host or a resolved capture.
type record struct {
	binding Input
	bound   bool
	mode    Mode
	active  bool
	wasDown bool
}

// Machine owns one record per logical hotkey slot and derives each slot's
// activation from polled physical state. One goroutine calls Update once
// per frame; every other accessor may be called from any goroutine. A
// single mutex guards the records, so each call is internally consistent
// while ordering between a racing SetMode and an in-flight Update stays
// last-write-wins.
type Machine struct {
	src Source

	mu   sync.RWMutex
	recs []record

	cap captureState
}

// NewMachine creates a machine with the given number of slots, all unbound
// and set to ModeHold.
func NewMachine(src Source, slots int) *Machine {
	m := &Machine{src: src, recs: make([]record, slots)}
	for i := range m.recs {
		m.recs[i].mode = ModeHold
	}
	return m
}

// Slots returns the fixed slot count.
func (m *Machine) Slots() int { return len(m.recs) }

// Update advances the machine one poll tick. While a capture session is
// listening the session alone owns the tick: no slot's activation or edge
// memory is recomputed, so the input that resolves or cancels a capture
// never leaks into activation state.
func (m *Machine) Update() {
	if m.stepCapture() {
		return
	}
	m.mu.Lock()
	for i := range m.recs {
		r := &m.recs[i]
		switch {
		case r.mode == ModeAlways:
			r.active = true
		case r.mode == ModeOff || !r.bound:
			r.active = false
		default:
			down := m.src.IsDown(r.binding)
			switch r.mode {
			case ModeHold:
				r.active = down
			case ModeHoldInverse:
				r.active = !down
			case ModeToggle:
				if down && !r.wasDown {
					r.active = !r.active
				}
			}
			r.wasDown = down
		}
	}
	m.mu.Unlock()
}

// IsActive reports the slot's published activation state as of the last
// Update. Out-of-range indices read as false; index misuse surfaces on the
// mutating calls instead.
func (m *Machine) IsActive(i int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.recs) {
		return false
	}
	return m.recs[i].active
}

// Binding returns the slot's bound input, if any.
func (m *Machine) Binding(i int) (Input, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.recs) || !m.recs[i].bound {
		return Input{}, false
	}
	return m.recs[i].binding, true
}

// Mode returns the slot's activation mode. Out-of-range indices read as
// ModeOff.
func (m *Machine) Mode(i int) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.recs) {
		return ModeOff
	}
	return m.recs[i].mode
}

// SetMode overwrites the slot's mode. Switching to ModeOff forces the slot
// inactive immediately rather than waiting for the next Update, so a
// disabled hotkey never reports a stale activation.
func (m *Machine) SetMode(i int, mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.recs) {
		return ErrInvalidIndex
	}
	m.recs[i].mode = mode
	if mode == ModeOff {
		m.recs[i].active = false
	}
	return nil
}

// SetBinding binds the slot to the given input. The edge memory is seeded
// from the input's current state so a Toggle slot does not flip from a
// press that predates the binding.
func (m *Machine) SetBinding(i int, in Input) error {
	down := m.src.IsDown(in)
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.recs) {
		return ErrInvalidIndex
	}
	m.recs[i].binding = in
	m.recs[i].bound = true
	m.recs[i].wasDown = down
	return nil
}

// ClearBinding unbinds the slot, leaving its mode unchanged. An unbound
// slot is inert under every mode except ModeAlways.
func (m *Machine) ClearBinding(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.recs) {
		return ErrInvalidIndex
	}
	m.recs[i].binding = Input{}
	m.recs[i].bound = false
	return nil
}
