package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenW = 640
	screenH = 480
)

// Demo hotkey slots. The slot indices are the host's fixed enumeration; the
// machine is sized with hotkeyCount at startup.
const (
	hkMoveUp = iota
	hkMoveDown
	hkMoveLeft
	hkMoveRight
	hkSprint
	hkShowFPS
	hotkeyCount
)

var hotkeyNames = [hotkeyCount]string{
	"Move Up",
	"Move Down",
	"Move Left",
	"Move Right",
	"Sprint",
	"Show FPS",
}

const (
	walkSpeed   = 2.0
	sprintSpeed = 5.0
)

// Game is the demo host: it polls the hotkey machine once per frame, moves
// a square with the movement slots, and draws the binding panel.
type Game struct {
	x, y float64
}

func newGame() *Game {
	return &Game{x: screenW / 2, y: screenH * 3 / 4}
}

func (g *Game) Update() error {
	hk.Update()
	updateHotkeysUI()

	speed := walkSpeed
	if hk.IsActive(hkSprint) {
		speed = sprintSpeed
	}
	if hk.IsActive(hkMoveUp) {
		g.y -= speed
	}
	if hk.IsActive(hkMoveDown) {
		g.y += speed
	}
	if hk.IsActive(hkMoveLeft) {
		g.x -= speed
	}
	if hk.IsActive(hkMoveRight) {
		g.x += speed
	}
	g.x = clamp(g.x, 0, screenW-squareSize)
	g.y = clamp(g.y, 0, screenH-squareSize)
	return nil
}

const squareSize = 24

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 32, 255})

	vector.DrawFilledRect(screen, float32(g.x), float32(g.y), squareSize, squareSize,
		color.RGBA{90, 160, 255, 255}, false)

	drawHotkeysPanel(screen)
	drawConsole(screen)

	if hk.IsActive(hkShowFPS) {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
