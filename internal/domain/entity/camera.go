package entity

import "math"

// Camera is the first-person viewpoint: a position, a unit facing
// direction, and the view plane. The plane is orthogonal to the direction
// with magnitude tan(half horizontal FOV), which fixes the field of view.
type Camera struct {
	PosX, PosY     float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewCamera creates a camera at (posX, posY) facing (dirX, dirY). The
// direction is normalized and the plane derived from it, so the
// orthogonality and unit-length invariants hold from the start. A zero
// direction falls back to facing negative X.
func NewCamera(posX, posY, dirX, dirY, fovFactor float64) *Camera {
	length := math.Hypot(dirX, dirY)
	if length == 0 {
		dirX, dirY, length = -1, 0, 1
	}
	dirX /= length
	dirY /= length
	return &Camera{
		PosX:   posX,
		PosY:   posY,
		DirX:   dirX,
		DirY:   dirY,
		PlaneX: dirY * fovFactor,
		PlaneY: -dirX * fovFactor,
	}
}

// Rotate turns the camera by rad radians. One shared rotation matrix is
// applied to both the direction and the plane, which preserves their
// orthogonality and the direction's unit length.
func (c *Camera) Rotate(rad float64) {
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	dirX := c.DirX*cos - c.DirY*sin
	dirY := c.DirX*sin + c.DirY*cos
	planeX := c.PlaneX*cos - c.PlaneY*sin
	planeY := c.PlaneX*sin + c.PlaneY*cos

	c.DirX, c.DirY = dirX, dirY
	c.PlaneX, c.PlaneY = planeX, planeY
}
