package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"gohotkey/hotkey"
)

const (
	bindingsFile    = "bindings.json"
	bindingsVersion = 1
)

var dataDirPath = defaultDataDir()

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gohotkey")
	}
	return "."
}

type savedBinding struct {
	Slot   int    `json:"slot"`
	Device string `json:"device,omitempty"`
	Code   int    `json:"code,omitempty"`
	Bound  bool   `json:"bound"`
	Mode   string `json:"mode"`
}

type bindingsDoc struct {
	Version  int            `json:"version"`
	Bindings []savedBinding `json:"bindings"`
}

// loadBindings restores saved bindings and modes into the machine. A
// missing file is first run: the demo defaults apply instead.
func loadBindings() {
	data, err := os.ReadFile(filepath.Join(dataDirPath, bindingsFile))
	if err != nil {
		if !os.IsNotExist(err) {
			logError("read bindings: %v", err)
		}
		applyDefaultBindings()
		return
	}
	var doc bindingsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logError("parse bindings: %v", err)
		applyDefaultBindings()
		return
	}
	for _, b := range doc.Bindings {
		if b.Slot < 0 || b.Slot >= hk.Slots() {
			logDebug("bindings: dropping unknown slot %d", b.Slot)
			continue
		}
		if b.Bound {
			in := hotkey.Key(b.Code)
			if b.Device == "mouse" {
				in = hotkey.Mouse(b.Code)
			}
			if err := hk.SetBinding(b.Slot, in); err != nil {
				logError("restore binding %d: %v", b.Slot, err)
			}
		}
		if err := hk.SetMode(b.Slot, modeFromName(b.Mode)); err != nil {
			logError("restore mode %d: %v", b.Slot, err)
		}
	}
}

func saveBindings() {
	doc := bindingsDoc{Version: bindingsVersion}
	for i := 0; i < hk.Slots(); i++ {
		b := savedBinding{Slot: i, Mode: hk.Mode(i).String()}
		if in, ok := hk.Binding(i); ok {
			b.Bound = true
			b.Code = in.Code
			b.Device = "key"
			if in.Device == hotkey.DeviceMouse {
				b.Device = "mouse"
			}
		}
		doc.Bindings = append(doc.Bindings, b)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logError("marshal bindings: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0o755); err != nil {
		logError("create %v: %v", dataDirPath, err)
		return
	}
	path := filepath.Join(dataDirPath, bindingsFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logError("write %v: %v", path, err)
	}
}

// modeFromName is the inverse of Mode.String. Unknown names degrade to
// ModeHold rather than failing the whole load.
func modeFromName(name string) hotkey.Mode {
	for _, m := range hotkey.Modes() {
		if m.String() == name {
			return m
		}
	}
	logDebug("bindings: unknown mode %q", name)
	return hotkey.ModeHold
}

func applyDefaultBindings() {
	def := []struct {
		slot int
		in   hotkey.Input
		mode hotkey.Mode
	}{
		{hkMoveUp, hotkey.Key(int(ebiten.KeyArrowUp)), hotkey.ModeHold},
		{hkMoveDown, hotkey.Key(int(ebiten.KeyArrowDown)), hotkey.ModeHold},
		{hkMoveLeft, hotkey.Key(int(ebiten.KeyArrowLeft)), hotkey.ModeHold},
		{hkMoveRight, hotkey.Key(int(ebiten.KeyArrowRight)), hotkey.ModeHold},
		{hkSprint, hotkey.Key(int(ebiten.KeyShiftLeft)), hotkey.ModeHold},
		{hkShowFPS, hotkey.Key(int(ebiten.KeyF3)), hotkey.ModeToggle},
	}
	for _, d := range def {
		if err := hk.SetBinding(d.slot, d.in); err != nil {
			logError("default binding %d: %v", d.slot, err)
			continue
		}
		if err := hk.SetMode(d.slot, d.mode); err != nil {
			logError("default mode %d: %v", d.slot, err)
		}
	}
	logDebug("bindings: defaults applied")
}
