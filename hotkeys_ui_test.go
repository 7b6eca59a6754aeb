package main

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"gohotkey/hotkey"
)

func center(x0, y0, x1, y1 int) (int, int) {
	return (x0 + x1) / 2, (y0 + y1) / 2
}

func TestBindButtonHitTesting(t *testing.T) {
	for i := 0; i < hotkeyCount; i++ {
		cx, cy := center(bindButtonRect(i))
		slot, ok := bindButtonAt(cx, cy)
		if !ok || slot != i {
			t.Fatalf("bindButtonAt center of row %d = %d, %v", i, slot, ok)
		}
		if _, ok := modeButtonAt(cx, cy); ok {
			t.Fatalf("bind button center of row %d also hits mode button", i)
		}
	}
	px0, py0, _, _ := panelRect()
	if _, ok := bindButtonAt(px0-1, py0-1); ok {
		t.Fatalf("point outside panel hit a bind button")
	}
}

func TestModeButtonHitTesting(t *testing.T) {
	for i := 0; i < hotkeyCount; i++ {
		cx, cy := center(modeButtonRect(i))
		slot, ok := modeButtonAt(cx, cy)
		if !ok || slot != i {
			t.Fatalf("modeButtonAt center of row %d = %d, %v", i, slot, ok)
		}
	}
}

func TestRowHitTesting(t *testing.T) {
	for i := 0; i < hotkeyCount; i++ {
		cx, cy := center(rowRect(i))
		slot, ok := hotkeyRowAt(cx, cy)
		if !ok || slot != i {
			t.Fatalf("hotkeyRowAt center of row %d = %d, %v", i, slot, ok)
		}
	}
	_, _, _, py1 := panelRect()
	if _, ok := hotkeyRowAt(panelX+cellPad+1, py1+10); ok {
		t.Fatalf("point below panel hit a row")
	}
}

func TestModeChoiceAt(t *testing.T) {
	const slot = 2
	px0, py0, _, _ := modePopupRect(slot)
	for i, want := range hotkey.Modes() {
		got, ok := modeChoiceAt(slot, px0+10, py0+i*rowH+rowH/2)
		if !ok || got != want {
			t.Fatalf("popup row %d = %v, %v; want %v", i, got, ok, want)
		}
	}
	if _, ok := modeChoiceAt(slot, px0-1, py0); ok {
		t.Fatalf("point left of popup mapped to a mode")
	}
	_, _, _, py1 := modePopupRect(slot)
	if _, ok := modeChoiceAt(slot, px0+10, py1+1); ok {
		t.Fatalf("point below popup mapped to a mode")
	}
}

func lastConsoleMessage() string {
	msgs := getConsoleMessages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func resetCaptureTracking() {
	wasCapturing = false
	captureSlot = 0
	capturePrev = hotkey.Input{}
	capturePrevOK = false
}

func TestTrackCaptureResultReportsBinding(t *testing.T) {
	src := withTestMachine(t)
	resetCaptureTracking()

	if err := hk.BeginCapture(1); err != nil {
		t.Fatalf("BeginCapture: %v", err)
	}
	trackCaptureResult()
	if !wasCapturing || captureSlot != 1 {
		t.Fatalf("tracking did not latch open session")
	}

	keyG := hotkey.Key(int(ebiten.KeyG))
	src.down[keyG] = true
	hk.Update()
	trackCaptureResult()

	if wasCapturing {
		t.Fatalf("tracking still marks session open")
	}
	if in, ok := hk.Binding(1); !ok || in != keyG {
		t.Fatalf("slot 1 binding = %v, %v; want G", in, ok)
	}
	if msg := lastConsoleMessage(); !strings.Contains(msg, "bound to G") {
		t.Fatalf("console message = %q; want bound-to report", msg)
	}
}

func TestTrackCaptureResultReportsCancel(t *testing.T) {
	src := withTestMachine(t)
	resetCaptureTracking()

	keyG := hotkey.Key(int(ebiten.KeyG))
	if err := hk.SetBinding(1, keyG); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}
	if err := hk.BeginCapture(1); err != nil {
		t.Fatalf("BeginCapture: %v", err)
	}
	trackCaptureResult()

	src.down[hotkey.Key(int(ebiten.KeyEscape))] = true
	hk.Update()
	trackCaptureResult()

	if in, ok := hk.Binding(1); !ok || in != keyG {
		t.Fatalf("cancel changed binding to %v, %v", in, ok)
	}
	if msg := lastConsoleMessage(); !strings.Contains(msg, "cancelled") {
		t.Fatalf("console message = %q; want cancel report", msg)
	}
}
