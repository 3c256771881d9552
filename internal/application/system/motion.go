package system

import (
	"log"
	"math"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

// maxMoveIterations bounds the micro-step loop against pathological
// speed values.
const maxMoveIterations = 64

// MotionSystem advances the camera through the world without letting it
// enter solid cells.
type MotionSystem struct {
	world  *entity.Map
	radius float64
}

// NewMotionSystem creates a motion system for the given world. radius is
// the camera's circular collision footprint in tile units.
func NewMotionSystem(world *entity.Map, radius float64) *MotionSystem {
	return &MotionSystem{
		world:  world,
		radius: radius,
	}
}

// Move displaces the camera along (dirX, dirY) by |speed| tile units,
// sliding along walls on diagonal contact. A negative speed reverses the
// direction. The displacement is applied in micro-steps of at most half
// the collision radius so a fast camera cannot tunnel through a
// single-tile wall, and each micro-step commits the X and Y axis
// independently, Y seeing the already-updated X.
func (s *MotionSystem) Move(cam *entity.Camera, dirX, dirY, speed float64) {
	remaining := math.Abs(speed)
	if speed < 0 {
		dirX, dirY = -dirX, -dirY
	}

	length := math.Hypot(dirX, dirY)
	if length == 0 {
		return
	}
	dirX /= length
	dirY /= length

	maxStep := s.radius * 0.5
	for iter := 0; remaining > 1e-6 && iter < maxMoveIterations; iter++ {
		step := math.Min(remaining, maxStep)
		remaining -= step

		nx := cam.PosX + dirX*step
		if !s.world.IsSolid(cellOf(nx+sgn(dirX)*s.radius), cellOf(cam.PosY)) {
			cam.PosX = nx
		}

		ny := cam.PosY + dirY*step
		if !s.world.IsSolid(cellOf(cam.PosX), cellOf(ny+sgn(dirY)*s.radius)) {
			cam.PosY = ny
		}
	}

	// The resolver is approximate; ending up inside a wall is a bug
	// worth surfacing but never fatal.
	if s.world.IsSolid(cellOf(cam.PosX), cellOf(cam.PosY)) {
		log.Printf("camera inside solid cell at (%.2f, %.2f)", cam.PosX, cam.PosY)
	}
}

func cellOf(v float64) int {
	return int(math.Floor(v))
}

func sgn(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
