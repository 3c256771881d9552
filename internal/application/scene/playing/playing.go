// Package playing provides the first-person exploration scene.
package playing

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/adrior11/raycasting/internal/application/render"
	"github.com/adrior11/raycasting/internal/application/replay"
	"github.com/adrior11/raycasting/internal/application/scene"
	"github.com/adrior11/raycasting/internal/application/state"
	"github.com/adrior11/raycasting/internal/application/system"
	"github.com/adrior11/raycasting/internal/domain/entity"
	"github.com/adrior11/raycasting/internal/infrastructure/config"
)

// InputSource supplies per-frame input. The keyboard input system and the
// replay playback source both satisfy it.
type InputSource interface {
	GetInput() system.InputState
}

// Playing is the first-person exploration scene
type Playing struct {
	config   *config.SettingsConfig
	world    *entity.Map
	camera   *entity.Camera
	motion   *system.MotionSystem
	renderer *render.Renderer
	input    InputSource
	state    state.GameState

	frame   *ebiten.Image
	screenW int
	screenH int
	dt      float64

	moveSpeed float64
	rotSpeed  float64

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	mapName        string
}

// New creates a new Playing scene.
// If recordPath is not empty, input will be recorded.
// If replayer is not nil, input is fed from the replay instead of the keyboard.
func New(cfg *config.SettingsConfig, world *entity.Map, reg *entity.Registry, recordPath string, replayer *replay.Replayer) (*Playing, error) {
	skyColor, err := config.ParseColor(cfg.Render.SkyColor)
	if err != nil {
		return nil, fmt.Errorf("sky color: %w", err)
	}
	groundColor, err := config.ParseColor(cfg.Render.GroundColor)
	if err != nil {
		return nil, fmt.Errorf("ground color: %w", err)
	}

	opts := render.Options{
		MaxSteps:      cfg.Render.MaxSteps,
		WallDimFactor: cfg.Render.WallDimFactor,
		SkyColor:      skyColor,
		GroundColor:   groundColor,
		CeilingTileID: cfg.Render.CeilingTileID,
	}

	w := cfg.Display.ScreenWidth
	h := cfg.Display.ScreenHeight

	renderer, err := render.NewRenderer(world, reg, w, h, opts)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	camera := entity.NewCamera(cfg.Camera.SpawnX, cfg.Camera.SpawnY, cfg.Camera.SpawnDirX, cfg.Camera.SpawnDirY, cfg.Camera.FOVFactor)

	p := &Playing{
		config:         cfg,
		world:          world,
		camera:         camera,
		motion:         system.NewMotionSystem(world, cfg.Camera.Radius),
		renderer:       renderer,
		input:          system.NewInputSystem(),
		state:          state.StatePlaying,
		screenW:        w,
		screenH:        h,
		dt:             1.0 / float64(cfg.Display.Framerate),
		moveSpeed:      cfg.Camera.MoveSpeed,
		rotSpeed:       cfg.Camera.RotationSpeed,
		recordFilename: recordPath,
		replayer:       replayer,
		mapName:        cfg.Assets.MapFile,
	}

	// Initialize recorder if recording is enabled
	if recordPath != "" {
		p.recorder = NewRecorder(p.mapName)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p, nil
}

// SetInputSource replaces the keyboard input source (for testing)
func (p *Playing) SetInputSource(src InputSource) {
	p.input = src
}

// Camera returns the scene's camera
func (p *Playing) Camera() *entity.Camera {
	return p.camera
}

// Update advances the scene by one frame (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		return p.updatePlaying()
	case state.StatePaused:
		input := p.input.GetInput()
		if input.Pause {
			p.state = state.StatePlaying
		}
		if input.Quit {
			return nil, ebiten.Termination
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() (scene.Scene, error) {
	input := p.currentInput()

	if input.Quit {
		return nil, ebiten.Termination
	}
	if input.Pause {
		p.state = state.StatePaused
		return nil, nil
	}

	// F5: Save recording manually
	if input.SaveReplay && p.recorder != nil {
		p.saveRecording()
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	// Rotation first, so movement uses the post-turn heading
	if input.TurnLeft {
		p.camera.Rotate(p.rotSpeed * p.dt)
	}
	if input.TurnRight {
		p.camera.Rotate(-p.rotSpeed * p.dt)
	}

	step := p.moveSpeed * p.dt
	if input.Forward {
		p.motion.Move(p.camera, p.camera.DirX, p.camera.DirY, step)
	}
	if input.Backward {
		p.motion.Move(p.camera, p.camera.DirX, p.camera.DirY, -step)
	}
	if input.StrafeRight {
		p.motion.Move(p.camera, p.camera.DirY, -p.camera.DirX, step)
	}
	if input.StrafeLeft {
		p.motion.Move(p.camera, p.camera.DirY, -p.camera.DirX, -step)
	}

	return nil, nil
}

// currentInput returns the frame's input, from the replayer when one is
// attached and still has frames, otherwise from the input source.
func (p *Playing) currentInput() system.InputState {
	if p.replayer != nil {
		ri, ok := p.replayer.GetInput()
		if ok {
			return system.InputState{
				Forward:     ri.Forward,
				Backward:    ri.Backward,
				StrafeLeft:  ri.StrafeLeft,
				StrafeRight: ri.StrafeRight,
				TurnLeft:    ri.TurnLeft,
				TurnRight:   ri.TurnRight,
			}
		}
		log.Printf("Replay finished (%d frames)", p.replayer.TotalFrames())
		p.replayer = nil
	}
	return p.input.GetInput()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the frame (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.frame == nil {
		p.frame = ebiten.NewImage(p.screenW, p.screenH)
	}
	fb := p.renderer.Render(p.camera)
	p.frame.WritePixels(fb.Pix())
	screen.DrawImage(p.frame, nil)

	msg := fmt.Sprintf("FPS: %0.1f | WASD: Move | Arrows: Turn | ESC: Pause | Q: Quit", ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, msg)

	if p.state == state.StatePaused {
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
