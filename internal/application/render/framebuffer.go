// Package render implements the software raycasting renderer: a flat RGBA
// frame buffer, the DDA wall pass, and the floor/ceiling projection pass.
package render

// FrameBuffer is a flat RGBA pixel target, sized once and fully rewritten
// every frame. The byte layout matches what the presentation layer uploads
// directly (R, G, B, A per pixel, row-major).
type FrameBuffer struct {
	width  int
	height int
	pix    []byte
}

// NewFrameBuffer allocates a frame buffer of the given size.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Width returns the buffer width in pixels.
func (f *FrameBuffer) Width() int { return f.width }

// Height returns the buffer height in pixels.
func (f *FrameBuffer) Height() int { return f.height }

// Pix returns the raw pixel bytes for hand-off to the presentation layer.
func (f *FrameBuffer) Pix() []byte { return f.pix }

// Clear zeroes every pixel.
func (f *FrameBuffer) Clear() {
	clear(f.pix)
}

// SetPacked writes a packed 0xAARRGGBB color at (x, y). The coordinate
// must be in range.
func (f *FrameBuffer) SetPacked(x, y int, argb uint32) {
	i := (y*f.width + x) * 4
	f.pix[i] = byte(argb >> 16)
	f.pix[i+1] = byte(argb >> 8)
	f.pix[i+2] = byte(argb)
	f.pix[i+3] = byte(argb >> 24)
}

// At reads back the packed 0xAARRGGBB color at (x, y).
func (f *FrameBuffer) At(x, y int) uint32 {
	i := (y*f.width + x) * 4
	return uint32(f.pix[i+3])<<24 | uint32(f.pix[i])<<16 | uint32(f.pix[i+1])<<8 | uint32(f.pix[i+2])
}

// VerticalLine fills column x from y0 to y1 inclusive, clipping the range
// to the visible screen.
func (f *FrameBuffer) VerticalLine(x, y0, y1 int, argb uint32) {
	y0 = max(0, y0)
	y1 = min(f.height-1, y1)
	for y := y0; y <= y1; y++ {
		f.SetPacked(x, y, argb)
	}
}
