package hotkey

// Color is a presentation hint for a slot's row; the UI layer maps it to
// real colors.
type Color uint8

const (
	ColorInactive Color = iota
	ColorActive
)

// Presenter formats slots for an immediate-mode UI and routes the UI's
// click intents back into the machine. It holds no state of its own.
type Presenter struct {
	m *Machine
}

func NewPresenter(m *Machine) *Presenter { return &Presenter{m: m} }

// Label returns the row text for a slot's binding widget: the listening
// placeholder while a capture targets the slot, the binding's display name
// when bound, "None" otherwise.
func (p *Presenter) Label(i int) string {
	if target, ok := p.m.Capturing(); ok && target == i {
		return "Press any key..."
	}
	in, ok := p.m.Binding(i)
	if !ok {
		return "None"
	}
	return Name(in)
}

// Color reflects the slot's current activation for presentation only.
func (p *Presenter) Color(i int) Color {
	if p.m.IsActive(i) {
		return ColorActive
	}
	return ColorInactive
}

// Click begins binding capture for the slot. A click while another session
// is listening is ignored rather than queued.
func (p *Presenter) Click(i int) {
	_ = p.m.BeginCapture(i)
}

// SecondaryClick returns the mode choices for a context popup on the slot.
func (p *Presenter) SecondaryClick(i int) []Mode {
	if i < 0 || i >= p.m.Slots() {
		return nil
	}
	return Modes()
}

// SelectMode applies a popup choice.
func (p *Presenter) SelectMode(i int, mode Mode) {
	_ = p.m.SetMode(i, mode)
}
