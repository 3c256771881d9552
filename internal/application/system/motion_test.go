package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

const testRadius = 0.1

func testTile(id int, kind entity.TileKind) *entity.Tile {
	return &entity.Tile{
		ID:     id,
		Width:  2,
		Height: 2,
		Pixels: make([]uint32, 4),
		Kind:   kind,
	}
}

// buildWorld converts rows of '#' (wall), '.' (floor), and ' ' (no tile)
// into a map.
func buildWorld(t *testing.T, rows ...string) *entity.Map {
	t.Helper()

	reg := entity.NewRegistry()
	require.NoError(t, reg.Add(testTile(0x01, entity.KindWall)))
	require.NoError(t, reg.Add(testTile(0x40, entity.KindFloor)))

	width := len(rows[0])
	cells := make([]int16, 0, width*len(rows))
	for _, row := range rows {
		require.Len(t, row, width)
		for _, ch := range row {
			switch ch {
			case '#':
				cells = append(cells, reg.Handle(0x01))
			case '.':
				cells = append(cells, reg.Handle(0x40))
			default:
				cells = append(cells, entity.NoTile)
			}
		}
	}
	return entity.NewMap(width, len(rows), cells, reg)
}

func TestMotionSystem_FreeSpaceAccumulatesExactly(t *testing.T) {
	world := buildWorld(t,
		"........",
		"........",
		"........",
		"........",
	)
	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(1, 2, 1, 0, 0.66)

	for i := 0; i < 10; i++ {
		motion.Move(cam, 1, 0, 0.5)
	}

	assert.InDelta(t, 6.0, cam.PosX, 1e-9, "ten 0.5 moves from x=1 must land at x=6")
	assert.InDelta(t, 2.0, cam.PosY, 1e-9)
}

func TestMotionSystem_NegativeSpeedReverses(t *testing.T) {
	world := buildWorld(t,
		"....",
		"....",
	)
	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(2, 1, 1, 0, 0.66)

	motion.Move(cam, 1, 0, -0.5)

	assert.InDelta(t, 1.5, cam.PosX, 1e-9)
}

func TestMotionSystem_ZeroDirectionIsNoOp(t *testing.T) {
	world := buildWorld(t, "....")
	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(1.5, 0.5, 1, 0, 0.66)

	motion.Move(cam, 0, 0, 1.0)

	assert.Equal(t, 1.5, cam.PosX)
	assert.Equal(t, 0.5, cam.PosY)
}

func TestMotionSystem_HighSpeedCannotTunnel(t *testing.T) {
	// Camera next to a single-tile wall, moving straight at it with one
	// oversized step.
	world := buildWorld(t,
		".....",
		"..#..",
		".....",
	)
	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(1.5, 1.5, 1, 0, 0.66)

	motion.Move(cam, 1, 0, 100.0)

	// The wall cell spans x in [2, 3); the camera center must stop at
	// least the collision radius short of it.
	assert.LessOrEqual(t, cam.PosX, 2.0-testRadius+1e-9)
	assert.Greater(t, cam.PosX, 1.5, "camera should still advance up to the wall")
	assert.InDelta(t, 1.5, cam.PosY, 1e-9)
}

func TestMotionSystem_SlidesAlongWall(t *testing.T) {
	world := buildWorld(t,
		".....",
		"#####",
	)
	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(1.5, 0.5, 1, 0, 0.66)

	// Moving diagonally into the wall row: Y is blocked, X keeps going.
	motion.Move(cam, 1, 1, 1.0)

	assert.Greater(t, cam.PosX, 1.5)
	assert.LessOrEqual(t, cam.PosY, 1.0-testRadius+1e-9)
}

func TestMotionSystem_DoorIsOpenToMovement(t *testing.T) {
	reg := entity.NewRegistry()
	require.NoError(t, reg.Add(testTile(0x03, entity.KindDoor)))
	cells := []int16{entity.NoTile, reg.Handle(0x03), entity.NoTile}
	world := entity.NewMap(3, 1, cells, reg)

	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(0.5, 0.5, 1, 0, 0.66)

	motion.Move(cam, 1, 0, 2.0)

	assert.InDelta(t, 2.5, cam.PosX, 1e-9, "door cells must not block movement")
}

func TestMotionSystem_StepsizeBoundedByRadius(t *testing.T) {
	world := buildWorld(t,
		"........",
	)
	motion := NewMotionSystem(world, testRadius)
	cam := entity.NewCamera(0.5, 0.5, 1, 0, 0.66)

	// The iteration cap bounds a single move to
	// maxMoveIterations * radius/2 tile units.
	motion.Move(cam, 1, 0, math.MaxFloat64)

	maxTravel := float64(maxMoveIterations) * testRadius * 0.5
	assert.LessOrEqual(t, cam.PosX-0.5, maxTravel+1e-9)
}
