package render

import (
	"github.com/adrior11/raycasting/internal/domain/entity"
)

// Renderer runs the full per-frame render pass: floor/ceiling rows first,
// then wall columns on top. The pass is a pure CPU walk over the frame
// buffer and always runs to completion.
type Renderer struct {
	fb     *FrameBuffer
	floors *FloorCeiling
	walls  *Raycaster
}

// NewRenderer builds the renderer and its frame buffer for a loaded world.
func NewRenderer(world *entity.Map, reg *entity.Registry, width, height int, opts Options) (*Renderer, error) {
	floors, err := NewFloorCeiling(world, reg, opts.CeilingTileID, width, height)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		fb:     NewFrameBuffer(width, height),
		floors: floors,
		walls:  NewRaycaster(world, width, height, opts),
	}, nil
}

// Render overwrites the whole frame for the given camera and returns the
// completed buffer. The caller must not mutate camera or map state while
// the pass runs.
func (r *Renderer) Render(cam *entity.Camera) *FrameBuffer {
	r.fb.Clear()
	r.floors.Render(r.fb, cam)
	r.walls.Render(r.fb, cam)
	return r.fb
}
