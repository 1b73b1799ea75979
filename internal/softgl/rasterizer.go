// Package softgl runs the transform pipeline on the CPU: clip test,
// perspective divide, viewport mapping and depth-tested triangles into an
// image, for snapshots without a GL context.
package softgl

import (
	"image"
	"image/color"
	"math"
)

// Canvas is an RGBA color buffer with a depth buffer of the same size.
type Canvas struct {
	Img   *image.RGBA
	depth []float64
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		Img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	c.Clear(color.RGBA{A: 255})
	return c
}

func (c *Canvas) Width() int  { return c.Img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.Img.Bounds().Dy() }

// Clear fills the color buffer and resets depth to +Inf.
func (c *Canvas) Clear(col color.RGBA) {
	pix := c.Img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = col.R, col.G, col.B, col.A
	}
	for i := range c.depth {
		c.depth[i] = math.Inf(1)
	}
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	offset := c.Img.PixOffset(x, y)
	c.Img.Pix[offset] = col.R
	c.Img.Pix[offset+1] = col.G
	c.Img.Pix[offset+2] = col.B
	c.Img.Pix[offset+3] = col.A
}

// DrawLine draws a line from (x1, y1) to (x2, y2) with a DDA walk. Pixels
// outside the canvas are skipped. Lines ignore the depth buffer.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := float64(x1)
	y := float64(y1)
	w, h := c.Width(), c.Height()

	for i := 0; i <= int(steps); i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if ix >= 0 && ix < w && iy >= 0 && iy < h {
			c.set(ix, iy, col)
		}
		x += xInc
		y += yInc
	}
}

// Vertex is a vertex in window coordinates: X, Y in pixels with Y down,
// Z the NDC depth in [-1, 1] (smaller is nearer).
type Vertex struct {
	X, Y, Z float64
	Color   color.RGBA
}

func edge(a, b Vertex, px, py float64) float64 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}

// FillTriangle rasterizes a triangle of either winding, sampling pixel
// centers, interpolating color and depth, and keeping fragments that pass
// a less-than depth test.
func (c *Canvas) FillTriangle(v0, v1, v2 Vertex) {
	area := edge(v0, v1, v2.X, v2.Y)
	if area == 0 {
		return
	}

	w, h := c.Width(), c.Height()
	minX := max(0, int(math.Floor(min(v0.X, v1.X, v2.X))))
	maxX := min(w-1, int(math.Ceil(max(v0.X, v1.X, v2.X))))
	minY := max(0, int(math.Floor(min(v0.Y, v1.Y, v2.Y))))
	maxY := min(h-1, int(math.Ceil(max(v0.Y, v1.Y, v2.Y))))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			b0 := edge(v1, v2, px, py) / area
			b1 := edge(v2, v0, px, py) / area
			b2 := edge(v0, v1, px, py) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}
			z := b0*v0.Z + b1*v1.Z + b2*v2.Z
			i := y*w + x
			if z >= c.depth[i] {
				continue
			}
			c.depth[i] = z
			c.set(x, y, color.RGBA{
				R: mix(b0, b1, b2, v0.Color.R, v1.Color.R, v2.Color.R),
				G: mix(b0, b1, b2, v0.Color.G, v1.Color.G, v2.Color.G),
				B: mix(b0, b1, b2, v0.Color.B, v1.Color.B, v2.Color.B),
				A: mix(b0, b1, b2, v0.Color.A, v1.Color.A, v2.Color.A),
			})
		}
	}
}

func mix(b0, b1, b2 float64, c0, c1, c2 uint8) uint8 {
	v := b0*float64(c0) + b1*float64(c1) + b2*float64(c2)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
