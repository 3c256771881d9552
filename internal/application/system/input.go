package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Pause       bool // edge triggered
	SaveReplay  bool // edge triggered
	Quit        bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		SaveReplay:  inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Quit:        ebiten.IsKeyPressed(ebiten.KeyQ),
	}
}
