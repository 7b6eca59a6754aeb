package hotkey

import "github.com/hajimehoshi/ebiten/v2"

// EbitenSource reads physical input state from the running Ebiten app.
// Media key codes above ebiten.KeyMax always read as up; ebiten does not
// report them.
type EbitenSource struct{}

func (EbitenSource) IsDown(in Input) bool {
	switch in.Device {
	case DeviceMouse:
		if in.Code < 1 || in.Code > 5 {
			return false
		}
		return ebiten.IsMouseButtonPressed(ebiten.MouseButton(in.Code - 1))
	case DeviceKey:
		if in.Code < 0 || in.Code > int(ebiten.KeyMax) {
			return false
		}
		return ebiten.IsKeyPressed(ebiten.Key(in.Code))
	}
	return false
}

func (EbitenSource) Inputs() []Bindable { return Bindables() }
