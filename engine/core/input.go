package core

// Input tracks key state from the events the window emits.
type Input struct {
	keys           map[Key]bool
	pressed        map[Key]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, pressed: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.keys[e.Key] {
			in.pressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// WasPressed reports whether k went down since the last EndFrame.
func (in *Input) WasPressed(k Key) bool { return in.pressed[k] }

// EndFrame forgets the presses of the frame just finished.
func (in *Input) EndFrame() {
	for k := range in.pressed {
		delete(in.pressed, k)
	}
}
