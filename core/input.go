package core

// maxKeys covers every GLFW key code (GLFW_KEY_LAST is 348).
const maxKeys = 512

// Input holds keyboard state for the current and previous frame.
// It is owned by the render loop and passed explicitly to whatever reads it.
type Input struct {
	keys     [maxKeys]bool
	keysPrev [maxKeys]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	firstMouse               bool
}

// NewInput returns an Input with no keys held. The first cursor sample
// produces no delta.
func NewInput() *Input {
	return &Input{firstMouse: true}
}

// SetKey records a press or release for key. Out-of-range keys are ignored.
func (in *Input) SetKey(key int, pressed bool) {
	if key < 0 || key >= maxKeys {
		return
	}
	in.keys[key] = pressed
}

// SetCursor records the cursor position and updates the per-frame delta.
func (in *Input) SetCursor(x, y float64) {
	if in.firstMouse {
		in.MouseX, in.MouseY = x, y
		in.firstMouse = false
	}
	in.MouseDeltaX = x - in.MouseX
	in.MouseDeltaY = y - in.MouseY
	in.MouseX, in.MouseY = x, y
}

// Advance ends the frame: the current key state becomes the previous one.
// Call it before polling events for the next frame.
func (in *Input) Advance() {
	in.keysPrev = in.keys
	in.MouseDeltaX, in.MouseDeltaY = 0, 0
}

// IsKeyDown reports whether key is held this frame.
func (in *Input) IsKeyDown(key int) bool {
	if key < 0 || key >= maxKeys {
		return false
	}
	return in.keys[key]
}

// IsKeyUp reports whether key is not held this frame.
func (in *Input) IsKeyUp(key int) bool {
	return !in.IsKeyDown(key)
}

// IsKeyPressed is true only on the frame a key goes from released to pressed.
func (in *Input) IsKeyPressed(key int) bool {
	if key < 0 || key >= maxKeys {
		return false
	}
	return in.keys[key] && !in.keysPrev[key]
}
