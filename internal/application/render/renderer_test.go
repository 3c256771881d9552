package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

func TestNewRenderer_RequiresCeilingTile(t *testing.T) {
	world, reg := buildGrid(t, "...")
	opts := testOptions()
	opts.CeilingTileID = 0x99

	_, err := NewRenderer(world, reg, 8, 8, opts)
	assert.Error(t, err)
}

func TestRenderer_RenderFullFrame(t *testing.T) {
	world, reg := buildGrid(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	const size = 64
	r, err := NewRenderer(world, reg, size, size, testOptions())
	require.NoError(t, err)

	cam := entity.NewCamera(2.5, 2.5, 1, 0, 0.66)
	fb := r.Render(cam)

	require.Len(t, fb.Pix(), size*size*4)

	// Wall straight ahead at the screen center.
	assert.Equal(t, uint32(0xFFAA0000), fb.At(size/2, size/2))
	// Floor visible at the bottom edge.
	assert.Equal(t, uint32(0xFF123456), fb.At(size/2, size-1))
	// Mirrored, darkened ceiling at the top edge.
	assert.Equal(t, uint32(0xFF404040), fb.At(size/2, 0))
}

// Rendering twice must fully overwrite the frame; nothing bleeds through
// from the previous camera pose.
func TestRenderer_RenderOverwritesPreviousFrame(t *testing.T) {
	world, reg := buildGrid(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	const size = 32
	r, err := NewRenderer(world, reg, size, size, testOptions())
	require.NoError(t, err)

	camA := entity.NewCamera(2.5, 2.5, 1, 0, 0.66)
	first := make([]byte, size*size*4)
	copy(first, r.Render(camA).Pix())

	camB := entity.NewCamera(1.5, 1.5, 0, 1, 0.66)
	r.Render(camB)

	camC := entity.NewCamera(2.5, 2.5, 1, 0, 0.66)
	second := r.Render(camC).Pix()

	assert.Equal(t, first, second)
}

func BenchmarkRenderer_Render(b *testing.B) {
	reg := entity.NewRegistry()
	if err := reg.Add(uniformTile(0x01, entity.KindWall, 64, 0xFFAA0000)); err != nil {
		b.Fatal(err)
	}
	if err := reg.Add(uniformTile(0x40, entity.KindFloor, 64, 0xFF123456)); err != nil {
		b.Fatal(err)
	}
	if err := reg.Add(uniformTile(0x41, entity.KindDecor, 64, 0xFF808080)); err != nil {
		b.Fatal(err)
	}

	const w, h = 24, 24
	cells := make([]int16, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y*w+x] = reg.Handle(0x01)
			} else {
				cells[y*w+x] = reg.Handle(0x40)
			}
		}
	}
	world := entity.NewMap(w, h, cells, reg)

	r, err := NewRenderer(world, reg, 320, 240, Options{
		MaxSteps:      1024,
		WallDimFactor: 0xC0,
		SkyColor:      0xFF202020,
		GroundColor:   0xFF505050,
		CeilingTileID: 0x41,
	})
	if err != nil {
		b.Fatal(err)
	}
	cam := entity.NewCamera(12.5, 12.5, 1, 0.2, 0.66)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cam.Rotate(0.01)
		r.Render(cam)
	}
}
