package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled per-tick input state.
type Input struct {
	// RotateLeft/RotateRight/Thrust are held-key states driving the ship.
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	// FirePressed is true on the frame the fire key is pressed.
	FirePressed bool
	// RocketPressed is true on the frame the rocket key is pressed.
	RocketPressed bool
	// StartPressed is true on the frame the start/restart key (P) is pressed.
	StartPressed bool
	// PausePressed is true on the frame the pause key (Escape) is pressed.
	PausePressed bool

	// Typed carries printable characters entered this frame, for the
	// high-score name prompt.
	Typed         []rune
	EnterPressed  bool
	DeletePressed bool

	charBuf []rune
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	i.RotateLeft = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.RotateRight = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	i.Thrust = ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)

	i.FirePressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.RocketPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyControlLeft)
	i.StartPressed = inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	i.charBuf = ebiten.AppendInputChars(i.charBuf[:0])
	i.Typed = i.Typed[:0]
	for _, r := range i.charBuf {
		if r >= ' ' {
			i.Typed = append(i.Typed, r)
		}
	}
	i.EnterPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	i.DeletePressed = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}
