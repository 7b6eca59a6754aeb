// Package hotkey maps a fixed set of logical action slots onto physical
// keyboard keys and mouse buttons. Each slot carries a binding and an
// activation mode; polling the machine once per frame turns raw key state
// into a stable boolean per slot. A single interactive capture session can
// listen for the next pressed input and install it as a slot's binding.
package hotkey

import "fmt"

// Device selects which half of the input space a code addresses.
type Device uint8

const (
	DeviceKey Device = iota
	DeviceMouse
)

// Input identifies one bindable physical input: a keyboard key code or a
// mouse button ordinal (1-5). Inputs are immutable values compared by
// device and code.
type Input struct {
	Device Device
	Code   int
}

// Key returns the keyboard input for the given key code. Codes up to
// ebiten.KeyMax mirror ebiten.Key; higher codes cover keys ebiten cannot
// report (see table.go).
func Key(code int) Input { return Input{Device: DeviceKey, Code: code} }

// Mouse returns the mouse input for the given button ordinal, 1 through 5.
func Mouse(button int) Input { return Input{Device: DeviceMouse, Code: button} }

func (in Input) String() string {
	if in.Device == DeviceMouse {
		return fmt.Sprintf("mouse %d", in.Code)
	}
	return fmt.Sprintf("key %d", in.Code)
}

// Bindable pairs an input with its short display label.
type Bindable struct {
	Input Input
	Name  string
}

// Source is the physical input boundary: a non-blocking, side-effect-free
// view of current key and mouse state, plus the stable-ordered table of
// inputs a hotkey may bind to. IsDown must be safe to call at any frequency
// from the polling goroutine.
type Source interface {
	IsDown(Input) bool
	Inputs() []Bindable
}
