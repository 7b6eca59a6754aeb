package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gohotkey/hotkey"
)

var (
	hk        *hotkey.Machine
	presenter *hotkey.Presenter
)

func main() {
	initFont()

	hk = hotkey.NewMachine(hotkey.EbitenSource{}, hotkeyCount)
	presenter = hotkey.NewPresenter(hk)
	loadBindings()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("gohotkey demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
