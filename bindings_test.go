package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"gohotkey/hotkey"
)

// stubSource is a controllable input source for root-level tests.
type stubSource struct {
	down map[hotkey.Input]bool
}

func newStubSource() *stubSource {
	return &stubSource{down: make(map[hotkey.Input]bool)}
}

func (s *stubSource) IsDown(in hotkey.Input) bool { return s.down[in] }

func (s *stubSource) Inputs() []hotkey.Bindable { return hotkey.Bindables() }

func withTestMachine(t *testing.T) *stubSource {
	t.Helper()
	src := newStubSource()
	oldHK, oldPresenter, oldDir := hk, presenter, dataDirPath
	hk = hotkey.NewMachine(src, hotkeyCount)
	presenter = hotkey.NewPresenter(hk)
	dataDirPath = t.TempDir()
	t.Cleanup(func() {
		hk, presenter, dataDirPath = oldHK, oldPresenter, oldDir
	})
	return src
}

func TestBindingsRoundTrip(t *testing.T) {
	withTestMachine(t)

	keyQ := hotkey.Key(int(ebiten.KeyQ))
	if err := hk.SetBinding(0, keyQ); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}
	if err := hk.SetMode(0, hotkey.ModeToggle); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if err := hk.SetBinding(1, hotkey.Mouse(4)); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}
	if err := hk.SetMode(2, hotkey.ModeAlways); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	saveBindings()

	hk = hotkey.NewMachine(newStubSource(), hotkeyCount)
	presenter = hotkey.NewPresenter(hk)
	loadBindings()

	if in, ok := hk.Binding(0); !ok || in != keyQ {
		t.Fatalf("slot 0 binding = %v, %v; want %v", in, ok, keyQ)
	}
	if got := hk.Mode(0); got != hotkey.ModeToggle {
		t.Fatalf("slot 0 mode = %v; want Toggle", got)
	}
	if in, ok := hk.Binding(1); !ok || in != hotkey.Mouse(4) {
		t.Fatalf("slot 1 binding = %v, %v; want Mouse 4", in, ok)
	}
	if got := hk.Mode(2); got != hotkey.ModeAlways {
		t.Fatalf("slot 2 mode = %v; want Always", got)
	}
	if _, ok := hk.Binding(3); ok {
		t.Fatalf("slot 3 unexpectedly bound")
	}
}

func TestLoadBindingsFirstRunDefaults(t *testing.T) {
	withTestMachine(t)

	loadBindings()

	if in, ok := hk.Binding(hkMoveUp); !ok || in != hotkey.Key(int(ebiten.KeyArrowUp)) {
		t.Fatalf("Move Up default = %v, %v", in, ok)
	}
	if got := hk.Mode(hkSprint); got != hotkey.ModeHold {
		t.Fatalf("Sprint default mode = %v; want Hold", got)
	}
	if in, ok := hk.Binding(hkShowFPS); !ok || in != hotkey.Key(int(ebiten.KeyF3)) {
		t.Fatalf("Show FPS default = %v, %v", in, ok)
	}
	if got := hk.Mode(hkShowFPS); got != hotkey.ModeToggle {
		t.Fatalf("Show FPS default mode = %v; want Toggle", got)
	}
}

func TestLoadBindingsToleratesBadEntries(t *testing.T) {
	withTestMachine(t)

	doc := `{
  "version": 1,
  "bindings": [
    {"slot": 0, "device": "key", "code": 16, "bound": true, "mode": "Bogus"},
    {"slot": 99, "device": "key", "code": 1, "bound": true, "mode": "Hold"}
  ]
}`
	path := filepath.Join(dataDirPath, bindingsFile)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loadBindings()

	if _, ok := hk.Binding(0); !ok {
		t.Fatalf("slot 0 should be bound")
	}
	if got := hk.Mode(0); got != hotkey.ModeHold {
		t.Fatalf("unknown mode degraded to %v; want Hold", got)
	}
	for i := 1; i < hk.Slots(); i++ {
		if _, ok := hk.Binding(i); ok {
			t.Fatalf("slot %d unexpectedly bound", i)
		}
	}
}

func TestLoadBindingsCorruptFileFallsBackToDefaults(t *testing.T) {
	withTestMachine(t)

	path := filepath.Join(dataDirPath, bindingsFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loadBindings()

	if in, ok := hk.Binding(hkMoveUp); !ok || in != hotkey.Key(int(ebiten.KeyArrowUp)) {
		t.Fatalf("corrupt file should yield defaults, got %v, %v", in, ok)
	}
}

func TestSaveBindingsCreatesDir(t *testing.T) {
	withTestMachine(t)
	dataDirPath = filepath.Join(dataDirPath, "nested", "dir")

	saveBindings()

	if _, err := os.Stat(filepath.Join(dataDirPath, bindingsFile)); err != nil {
		t.Fatalf("bindings file missing: %v", err)
	}
}
