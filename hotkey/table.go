package hotkey

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Media keys live above the ebiten code range. The Ebiten source cannot
// observe them and reports them as up, but they stay in the table so a
// platform source that can see them shares the same naming and bindings.
const (
	codeVolumeUp = int(ebiten.KeyMax) + 1 + iota
	codeVolumeDown
	codeVolumeMute
	codePlayPause
	codeNextTrack
	codePrevTrack
)

// escapeInput cancels an open capture session and is never bindable as a
// capture result.
var escapeInput = Key(int(ebiten.KeyEscape))

// bindables is the canonical scan order for capture resolution: mouse
// buttons first, then keys grouped roughly by keyboard region.
var bindables []Bindable

var nameByInput map[Input]string

func init() {
	add := func(in Input, name string) {
		bindables = append(bindables, Bindable{Input: in, Name: name})
	}
	key := func(k ebiten.Key, name string) { add(Key(int(k)), name) }

	add(Mouse(1), "Mouse Left")
	add(Mouse(2), "Mouse Middle")
	add(Mouse(3), "Mouse Right")
	add(Mouse(4), "Mouse 4")
	add(Mouse(5), "Mouse 5")

	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		key(k, string(rune('A'+int(k-ebiten.KeyA))))
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		key(k, string(rune('0'+int(k-ebiten.KeyDigit0))))
	}

	key(ebiten.KeyBackquote, "`")
	key(ebiten.KeyMinus, "-")
	key(ebiten.KeyEqual, "=")
	key(ebiten.KeyBracketLeft, "[")
	key(ebiten.KeyBracketRight, "]")
	key(ebiten.KeyBackslash, "\\")
	key(ebiten.KeySemicolon, ";")
	key(ebiten.KeyQuote, "'")
	key(ebiten.KeyComma, ",")
	key(ebiten.KeyPeriod, ".")
	key(ebiten.KeySlash, "/")
	key(ebiten.KeyIntlBackslash, "Intl \\")

	for i := 0; i < 12; i++ {
		key(ebiten.KeyF1+ebiten.Key(i), fmt.Sprintf("F%d", i+1))
	}

	for k := ebiten.KeyNumpad0; k <= ebiten.KeyNumpad9; k++ {
		key(k, fmt.Sprintf("Num %d", int(k-ebiten.KeyNumpad0)))
	}
	key(ebiten.KeyNumpadAdd, "Num +")
	key(ebiten.KeyNumpadSubtract, "Num -")
	key(ebiten.KeyNumpadMultiply, "Num *")
	key(ebiten.KeyNumpadDivide, "Num /")
	key(ebiten.KeyNumpadDecimal, "Num .")
	key(ebiten.KeyNumpadEqual, "Num =")
	key(ebiten.KeyNumpadEnter, "Num Enter")

	key(ebiten.KeyShiftLeft, "L-Shift")
	key(ebiten.KeyShiftRight, "R-Shift")
	key(ebiten.KeyControlLeft, "L-Ctrl")
	key(ebiten.KeyControlRight, "R-Ctrl")
	key(ebiten.KeyAltLeft, "L-Alt")
	key(ebiten.KeyAltRight, "R-Alt")
	key(ebiten.KeyMetaLeft, "L-Win")
	key(ebiten.KeyMetaRight, "R-Win")
	key(ebiten.KeyContextMenu, "Menu")

	key(ebiten.KeyArrowUp, "Up")
	key(ebiten.KeyArrowDown, "Down")
	key(ebiten.KeyArrowLeft, "Left")
	key(ebiten.KeyArrowRight, "Right")
	key(ebiten.KeyHome, "Home")
	key(ebiten.KeyEnd, "End")
	key(ebiten.KeyPageUp, "PgUp")
	key(ebiten.KeyPageDown, "PgDn")
	key(ebiten.KeyInsert, "Ins")
	key(ebiten.KeyDelete, "Del")
	key(ebiten.KeyTab, "Tab")
	key(ebiten.KeyEnter, "Enter")
	key(ebiten.KeyEscape, "Esc")
	key(ebiten.KeyBackspace, "Backspace")
	key(ebiten.KeySpace, "Space")

	key(ebiten.KeyCapsLock, "Caps")
	key(ebiten.KeyNumLock, "NumLock")
	key(ebiten.KeyScrollLock, "ScrLk")
	key(ebiten.KeyPrintScreen, "PrtSc")
	key(ebiten.KeyPause, "Pause")

	add(Key(codeVolumeUp), "Vol Up")
	add(Key(codeVolumeDown), "Vol Dn")
	add(Key(codeVolumeMute), "Mute")
	add(Key(codePlayPause), "Play")
	add(Key(codeNextTrack), "Next")
	add(Key(codePrevTrack), "Prev")

	nameByInput = make(map[Input]string, len(bindables))
	for _, b := range bindables {
		nameByInput[b.Input] = b.Name
	}
}

// Bindables returns the shared bindable input table. Callers must treat the
// slice as read-only.
func Bindables() []Bindable { return bindables }

// Name returns the short display label for an input. Inputs outside the
// table format as a generic label instead of erroring, so stale saved
// bindings from another backend still display.
func Name(in Input) string {
	if n, ok := nameByInput[in]; ok {
		return n
	}
	if in.Device == DeviceMouse {
		return fmt.Sprintf("Mouse %d", in.Code)
	}
	return fmt.Sprintf("Key 0x%02X", in.Code)
}
