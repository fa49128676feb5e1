// Package render provides the camera, lights and 2D canvases the painter
// pipeline draws into.
package render

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/taigrr/painter/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// It implements Canvas with plain overdraw: no depth test is performed, so
// the draw order alone decides what is visible.
type Framebuffer struct {
	Width  int     // Width in pixels (same as terminal columns)
	Height int     // Height in pixels (2x terminal rows due to half-blocks)
	Pixels []Color // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// BlendPixel composites c over the pixel at (x, y).
func (fb *Framebuffer) BlendPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	fb.Pixels[i] = blend(fb.Pixels[i], c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawPolygon fills a triangle given in screen coordinates.
// Either winding is accepted; degenerate triangles draw nothing.
func (fb *Framebuffer) DrawPolygon(points [3]math3d.Vec2, c Color) {
	p0, p1, p2 := points[0], points[1], points[2]
	if p0.IsNaN() || p1.IsNaN() || p2.IsNaN() {
		return
	}
	area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X)
	if area == 0 {
		return
	}

	minX := int(math.Max(0, math.Floor(min3(p0.X, p1.X, p2.X))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max3(p0.X, p1.X, p2.X))))
	minY := int(math.Max(0, math.Floor(min3(p0.Y, p1.Y, p2.Y))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max3(p0.Y, p1.Y, p2.Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			bc := barycentric(
				p0.X, p0.Y,
				p1.X, p1.Y,
				p2.X, p2.Y,
				float64(x)+0.5, float64(y)+0.5,
			)
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			fb.BlendPixel(x, y, c)
		}
	}
}

// DrawLine draws a line segment. Widths above one pixel are drawn as
// parallel strokes offset along the segment normal.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 float64, c Color, width float64) {
	if hasNaN(x0, y0, x1, y1, width) {
		return
	}
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(fb.Width), float64(fb.Height))
	if !ok {
		return
	}

	strokes := max(1, int(math.Round(width)))
	nx, ny := 0.0, 0.0
	if l := math.Hypot(x1-x0, y1-y0); l > 0 {
		nx, ny = -(y1-y0)/l, (x1-x0)/l
	}
	for i := range strokes {
		off := float64(i) - float64(strokes-1)/2
		fb.plotLine(
			int(math.Round(x0+nx*off)), int(math.Round(y0+ny*off)),
			int(math.Round(x1+nx*off)), int(math.Round(y1+ny*off)),
			c,
		)
	}
}

// plotLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) plotLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.BlendPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment clips a segment to the rectangle [-1, w] x [-1, h] using the
// Liang-Barsky method. ok is false when nothing of the segment is inside.
func clipSegment(x0, y0, x1, y1, w, h float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 + 1},
		{dx, w - x0},
		{-dy, y0 + 1},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// barycentric calculates barycentric coordinates for point (px, py) in triangle.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	invDenom := 1.0 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
