package render

import (
	"math"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

// Options holds the render constants resolved from configuration.
type Options struct {
	MaxSteps      int    // DDA step ceiling per ray
	WallDimFactor uint32 // 0..256 multiplier applied to Y-side wall faces
	SkyColor      uint32
	GroundColor   uint32
	CeilingTileID int
}

// Raycaster draws textured wall columns into a frame buffer by marching
// one ray per screen column through the map grid.
type Raycaster struct {
	world  *entity.Map
	opts   Options
	width  int
	height int
	lut    []float64 // per-column camera-space offset, 2x/w - 1
}

// NewRaycaster creates a raycaster for the given world and screen size.
func NewRaycaster(world *entity.Map, width, height int, opts Options) *Raycaster {
	lut := make([]float64, width)
	for x := range lut {
		lut[x] = 2*float64(x)/float64(width) - 1
	}
	return &Raycaster{
		world:  world,
		opts:   opts,
		width:  width,
		height: height,
		lut:    lut,
	}
}

// rayHit describes the nearest wall a ray struck.
type rayHit struct {
	tile             *entity.Tile
	dist             float64 // perpendicular distance to the wall plane
	side             int     // 0 = X-aligned grid line crossed, 1 = Y-aligned
	wallX            float64 // fractional wall coordinate along the non-stepped axis
	rayDirX, rayDirY float64
}

// castRay marches a single ray for camera-space offset t. It reports no
// hit when the ray leaves the map or exceeds the step ceiling.
func (r *Raycaster) castRay(cam *entity.Camera, t float64) (rayHit, bool) {
	rayDirX := cam.DirX + cam.PlaneX*t
	rayDirY := cam.DirY + cam.PlaneY*t

	mapX := cellOf(cam.PosX)
	mapY := cellOf(cam.PosY)

	// Near-zero components get a finite but huge reciprocal instead of
	// dividing by exact zero.
	deltaDistX := 1 / (math.Abs(rayDirX) + 1e-20)
	deltaDistY := 1 / (math.Abs(rayDirY) + 1e-20)

	stepX, stepY := 1, 1
	sideDistX := (float64(mapX) + 1 - cam.PosX) * deltaDistX
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (cam.PosX - float64(mapX)) * deltaDistX
	}
	sideDistY := (float64(mapY) + 1 - cam.PosY) * deltaDistY
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (cam.PosY - float64(mapY)) * deltaDistY
	}

	side := 0
	for steps := 0; steps < r.opts.MaxSteps; steps++ {
		// Advance whichever axis has the nearer grid-line crossing.
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}

		if !r.world.InBounds(mapX, mapY) {
			return rayHit{}, false
		}
		tile, ok := r.world.Get(mapX, mapY)
		if !ok || (tile.Kind != entity.KindWall && tile.Kind != entity.KindDoor) {
			continue
		}

		// Undo the final over-step to get the distance to the wall
		// plane rather than the corner.
		var dist float64
		if side == 0 {
			dist = sideDistX - deltaDistX
		} else {
			dist = sideDistY - deltaDistY
		}
		if dist < 1e-6 {
			dist = 1e-6
		}

		var wallX float64
		if side == 0 {
			wallX = cam.PosY + dist*rayDirY
		} else {
			wallX = cam.PosX + dist*rayDirX
		}
		wallX -= math.Floor(wallX)

		return rayHit{
			tile:    tile,
			dist:    dist,
			side:    side,
			wallX:   wallX,
			rayDirX: rayDirX,
			rayDirY: rayDirY,
		}, true
	}
	return rayHit{}, false
}

// Render draws one wall column per screen column. Columns whose ray never
// hits a wall get the sky/ground background.
func (r *Raycaster) Render(fb *FrameBuffer, cam *entity.Camera) {
	for x := 0; x < r.width; x++ {
		hit, ok := r.castRay(cam, r.lut[x])
		if !ok {
			half := r.height / 2
			fb.VerticalLine(x, 0, half-1, r.opts.SkyColor)
			fb.VerticalLine(x, half, r.height-1, r.opts.GroundColor)
			continue
		}

		tile := hit.tile
		texX := int(hit.wallX*float64(tile.Width)) & (tile.Width - 1)
		// Mirror the texture column so orientation stays consistent no
		// matter which face of the tile was struck.
		if (hit.side == 0 && hit.rayDirX > 0) || (hit.side == 1 && hit.rayDirY < 0) {
			texX = tile.Width - 1 - texX
		}

		lineHeight := int(float64(r.height) / hit.dist)
		if lineHeight < 1 {
			lineHeight = 1 // distant walls truncate to 0; the center row still draws
		}
		drawStart := max(0, (r.height-lineHeight)/2)
		drawEnd := min(r.height-1, (r.height+lineHeight)/2)

		for y := drawStart; y <= drawEnd; y++ {
			// Fixed-point map of the row position within the column
			// back into texture space.
			d := y*256 - r.height*128 + lineHeight*128
			texY := ((d * tile.Height) / lineHeight) / 256

			c := tile.Texel(texX, texY)
			if hit.side == 1 {
				c = dimColor(c, r.opts.WallDimFactor)
			}
			fb.SetPacked(x, y, c)
		}
	}
}

// dimColor scales the red/green/blue channels by factor/256 in two masked
// multiplies, forcing full alpha.
func dimColor(c, factor uint32) uint32 {
	rb := ((c & 0xFF00FF) * factor) >> 8
	g := ((c & 0x00FF00) * factor) >> 8
	return 0xFF000000 | (rb & 0xFF00FF) | (g & 0x00FF00)
}

func cellOf(v float64) int {
	return int(math.Floor(v))
}
