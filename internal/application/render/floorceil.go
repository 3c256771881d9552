package render

import (
	"fmt"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

// FloorCeiling projects floor and ceiling textures row by row. Each row
// below the horizon walks the world-space floor coordinate incrementally
// across all columns instead of recomputing the perspective per pixel; the
// ceiling is painted simultaneously by mirroring the row above the horizon.
type FloorCeiling struct {
	world   *entity.Map
	ceiling *entity.Tile // fixed ceiling texture, not derived from the map
	width   int
	height  int
}

// NewFloorCeiling creates the projector. The ceiling tile id must be
// registered; a renderer without its ceiling texture cannot start.
func NewFloorCeiling(world *entity.Map, reg *entity.Registry, ceilingTileID, width, height int) (*FloorCeiling, error) {
	ceiling, ok := reg.ByID(ceilingTileID)
	if !ok {
		return nil, fmt.Errorf("ceiling tile %#02x is not registered", ceilingTileID)
	}
	return &FloorCeiling{
		world:   world,
		ceiling: ceiling,
		width:   width,
		height:  height,
	}, nil
}

// Render paints floor and ceiling rows. The horizon row itself is skipped;
// its perspective divide is degenerate and the row keeps the background.
func (p *FloorCeiling) Render(fb *FrameBuffer, cam *entity.Camera) {
	half := p.height / 2

	// Extreme rays for the leftmost and rightmost columns.
	rayDirX0 := cam.DirX - cam.PlaneX
	rayDirY0 := cam.DirY - cam.PlaneY
	rayDirX1 := cam.DirX + cam.PlaneX
	rayDirY1 := cam.DirY + cam.PlaneY

	for y := half + 1; y < p.height; y++ {
		rowDist := float64(half) / float64(y-half)

		stepX := rowDist * (rayDirX1 - rayDirX0) / float64(p.width)
		stepY := rowDist * (rayDirY1 - rayDirY0) / float64(p.width)

		floorX := cam.PosX + rayDirX0*rowDist
		floorY := cam.PosY + rayDirY0*rowDist

		for x := 0; x < p.width; x++ {
			cellX := cellOf(floorX)
			cellY := cellOf(floorY)

			floorX += stepX
			floorY += stepY

			tile, ok := p.world.Get(cellX, cellY)
			if !ok || tile.Kind != entity.KindFloor {
				continue
			}

			texX := int((floorX - float64(cellX)) * float64(tile.Width))
			texY := int((floorY - float64(cellY)) * float64(tile.Height))

			fb.SetPacked(x, y, 0xFF000000|tile.Texel(texX, texY)&0xFFFFFF)

			// Mirror the same column above the horizon with the fixed
			// ceiling texture, darkened by a shift-and-mask.
			ceil := p.ceiling.Texel(texX, texY)
			fb.SetPacked(x, p.height-1-y, 0xFF000000|(ceil>>1)&0x7F7F7F)
		}
	}
}
