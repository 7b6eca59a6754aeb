package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gohotkey/hotkey"
)

// Panel geometry. Rows are fixed-height cells: action name, binding button,
// mode button, state dot.
const (
	panelX  = 8
	panelY  = 8
	rowH    = 26
	nameW   = 92
	bindW   = 132
	modeW   = 104
	dotW    = 18
	cellPad = 4
)

var (
	// modePopupSlot is the slot whose mode popup is open, -1 for none.
	modePopupSlot = -1

	// Capture bookkeeping so the UI can persist and report the outcome
	// once the session closes.
	wasCapturing  bool
	captureSlot   int
	capturePrev   hotkey.Input
	capturePrevOK bool
)

var (
	colPanelBG   = color.RGBA{36, 36, 46, 230}
	colButtonBG  = color.RGBA{58, 58, 72, 255}
	colListening = color.RGBA{96, 80, 40, 255}
	colPopupBG   = color.RGBA{48, 48, 60, 245}
	colActive    = color.RGBA{80, 200, 100, 255}
	colInactive  = color.RGBA{110, 110, 120, 255}
	colText      = color.RGBA{230, 230, 235, 255}
	colDimText   = color.RGBA{160, 160, 170, 255}
)

func panelRect() (x0, y0, x1, y1 int) {
	w := nameW + bindW + modeW + dotW + cellPad*5
	return panelX, panelY, panelX + w, panelY + rowH*hotkeyCount + cellPad*2
}

func rowRect(i int) (x0, y0, x1, y1 int) {
	px0, py0, px1, _ := panelRect()
	y0 = py0 + cellPad + i*rowH
	return px0 + cellPad, y0, px1 - cellPad, y0 + rowH
}

func bindButtonRect(i int) (x0, y0, x1, y1 int) {
	rx0, ry0, _, ry1 := rowRect(i)
	x0 = rx0 + nameW + cellPad
	return x0, ry0 + 2, x0 + bindW, ry1 - 2
}

func modeButtonRect(i int) (x0, y0, x1, y1 int) {
	_, by0, bx1, by1 := bindButtonRect(i)
	return bx1 + cellPad, by0, bx1 + cellPad + modeW, by1
}

func stateDotRect(i int) (x0, y0, x1, y1 int) {
	_, my0, mx1, my1 := modeButtonRect(i)
	return mx1 + cellPad, my0, mx1 + cellPad + dotW, my1
}

func inRect(x, y, x0, y0, x1, y1 int) bool {
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// hotkeyRowAt returns the slot whose row contains the point.
func hotkeyRowAt(x, y int) (int, bool) {
	for i := 0; i < hotkeyCount; i++ {
		rx0, ry0, rx1, ry1 := rowRect(i)
		if inRect(x, y, rx0, ry0, rx1, ry1) {
			return i, true
		}
	}
	return 0, false
}

func bindButtonAt(x, y int) (int, bool) {
	for i := 0; i < hotkeyCount; i++ {
		bx0, by0, bx1, by1 := bindButtonRect(i)
		if inRect(x, y, bx0, by0, bx1, by1) {
			return i, true
		}
	}
	return 0, false
}

func modeButtonAt(x, y int) (int, bool) {
	for i := 0; i < hotkeyCount; i++ {
		mx0, my0, mx1, my1 := modeButtonRect(i)
		if inRect(x, y, mx0, my0, mx1, my1) {
			return i, true
		}
	}
	return 0, false
}

// modePopupRect anchors the mode popup beneath the slot's mode button.
func modePopupRect(slot int) (x0, y0, x1, y1 int) {
	mx0, my0, _, _ := modeButtonRect(slot)
	n := len(hotkey.Modes())
	return mx0, my0 + rowH - 2, mx0 + modeW, my0 + rowH - 2 + n*rowH
}

// modeChoiceAt maps a point inside the open popup to the mode listed there.
func modeChoiceAt(slot, x, y int) (hotkey.Mode, bool) {
	px0, py0, px1, py1 := modePopupRect(slot)
	if !inRect(x, y, px0, py0, px1, py1) {
		return hotkey.ModeOff, false
	}
	modes := hotkey.Modes()
	idx := (y - py0) / rowH
	if idx < 0 || idx >= len(modes) {
		return hotkey.ModeOff, false
	}
	return modes[idx], true
}

func updateHotkeysUI() {
	trackCaptureResult()

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		handlePanelClick(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if slot, ok := hotkeyRowAt(mx, my); ok && presenter.SecondaryClick(slot) != nil {
			modePopupSlot = slot
		} else {
			modePopupSlot = -1
		}
	}
}

func handlePanelClick(mx, my int) {
	if _, open := hk.Capturing(); open {
		// The machine already treats this press as a capture candidate;
		// the panel stays out of the way.
		return
	}
	if modePopupSlot >= 0 {
		slot := modePopupSlot
		modePopupSlot = -1
		if mode, ok := modeChoiceAt(slot, mx, my); ok {
			presenter.SelectMode(slot, mode)
			consoleMessage(fmt.Sprintf("%s mode set to %s", hotkeyNames[slot], mode))
			saveBindings()
		}
		return
	}
	if slot, ok := bindButtonAt(mx, my); ok {
		presenter.Click(slot)
		return
	}
	if slot, ok := modeButtonAt(mx, my); ok {
		modePopupSlot = slot
	}
}

// trackCaptureResult watches the session's open/close transitions so a
// resolved binding gets persisted and reported.
func trackCaptureResult() {
	if slot, open := hk.Capturing(); open {
		if !wasCapturing {
			wasCapturing = true
			captureSlot = slot
			capturePrev, capturePrevOK = hk.Binding(slot)
		}
		return
	}
	if !wasCapturing {
		return
	}
	wasCapturing = false
	in, ok := hk.Binding(captureSlot)
	if ok == capturePrevOK && in == capturePrev {
		consoleMessage("binding capture cancelled")
		return
	}
	consoleMessage(fmt.Sprintf("%s bound to %s", hotkeyNames[captureSlot], hotkey.Name(in)))
	saveBindings()
}

func drawHotkeysPanel(screen *ebiten.Image) {
	px0, py0, px1, py1 := panelRect()
	vector.DrawFilledRect(screen, float32(px0), float32(py0),
		float32(px1-px0), float32(py1-py0), colPanelBG, false)

	for i := 0; i < hotkeyCount; i++ {
		rx0, ry0, _, _ := rowRect(i)
		drawText(screen, hotkeyNames[i], float64(rx0), float64(ry0)+5, colText)

		bx0, by0, bx1, by1 := bindButtonRect(i)
		bg := colButtonBG
		if t, open := hk.Capturing(); open && t == i {
			bg = colListening
		}
		vector.DrawFilledRect(screen, float32(bx0), float32(by0),
			float32(bx1-bx0), float32(by1-by0), bg, false)
		drawText(screen, presenter.Label(i), float64(bx0)+6, float64(by0)+3, colText)

		mx0, my0, mx1, my1 := modeButtonRect(i)
		vector.DrawFilledRect(screen, float32(mx0), float32(my0),
			float32(mx1-mx0), float32(my1-my0), colButtonBG, false)
		drawText(screen, hk.Mode(i).String(), float64(mx0)+6, float64(my0)+3, colDimText)

		dx0, dy0, dx1, dy1 := stateDotRect(i)
		dot := colInactive
		if presenter.Color(i) == hotkey.ColorActive {
			dot = colActive
		}
		vector.DrawFilledRect(screen, float32(dx0)+4, float32(dy0)+6,
			float32(dx1-dx0)-8, float32(dy1-dy0)-12, dot, false)
	}

	if modePopupSlot >= 0 {
		drawModePopup(screen, modePopupSlot)
	}
	if slot, open := hk.Capturing(); open {
		drawListeningPopup(screen, slot)
	}
}

func drawModePopup(screen *ebiten.Image, slot int) {
	px0, py0, px1, py1 := modePopupRect(slot)
	vector.DrawFilledRect(screen, float32(px0), float32(py0),
		float32(px1-px0), float32(py1-py0), colPopupBG, false)
	current := hk.Mode(slot)
	for i, mode := range hotkey.Modes() {
		clr := colDimText
		if mode == current {
			clr = colText
		}
		drawText(screen, mode.String(), float64(px0)+6, float64(py0+i*rowH)+5, clr)
	}
}

func drawListeningPopup(screen *ebiten.Image, slot int) {
	const w, h = 340, 54
	x := float32(screenW-w) / 2
	y := float32(screenH-h) / 2
	vector.DrawFilledRect(screen, x, y, w, h, colPopupBG, false)
	msg := fmt.Sprintf("Press any key to bind %q", hotkeyNames[slot])
	drawText(screen, msg, float64(x)+10, float64(y)+8, colText)
	drawText(screen, "Esc cancels", float64(x)+10, float64(y)+28, colDimText)
}
