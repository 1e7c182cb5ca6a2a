package core

// Input tracks the latest key, button and pointer state seen by the engine.
type Input struct {
	keys           map[Key]bool
	buttons        [3]bool
	mods           Mod
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
		in.mods = e.Mods
	case EventChar:
		in.mods = e.Mods
	case EventMouseButton:
		if int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
		in.mods = e.Mods
	case EventScroll:
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b]
}
func (in *Input) Mods() Mod                 { return in.mods }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
