package render

import (
	"image/color"
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// Canvas is an immediate-mode 2D drawing surface.
//
// Callers never pass coordinates containing NaN; implementations may still
// drop such primitives.
type Canvas interface {
	Clear(c Color)
	DrawPolygon(points [3]math3d.Vec2, c Color)
	DrawLine(x0, y0, x1, y1 float64, c Color, width float64)
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
	ColorGrass   = color.RGBA{34, 139, 34, 255}
	ColorDiamond = color.RGBA{128, 128, 255, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// ScaleColor multiplies the RGB channels by factor and keeps alpha.
func ScaleColor(c Color, factor float64) Color {
	return Color{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: c.A,
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(float64(v)*factor))))
}

// blend composites src over dst using src's alpha.
func blend(dst, src Color) Color {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return Color{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: uint8(math.Min(255, float64(dst.A)+float64(src.A)*(1-float64(dst.A)/255))),
	}
}

// hasNaN reports whether any of the given coordinates is not-a-number.
func hasNaN(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
