package art

import (
	"github.com/a2aaron/BROKEN-FIELD/fractal"
)

const (
	mandelbrotIters  = 100
	mandelbrotEscape = 2.0
)

// complexGrid maps image percentages onto a window of the complex plane.
type complexGrid struct {
	cornerRe, cornerIm float64
	width, height      float64
}

func defaultGrid() complexGrid {
	return complexGrid{cornerRe: -2.0, cornerIm: -2.0, width: 4.0, height: 4.0}
}

func (g complexGrid) at(xPercent, yPercent float64) complex128 {
	return complex(g.cornerRe+g.width*xPercent, g.cornerIm+g.height*yPercent)
}

// MandelbrotPiece renders the classic escape-time view of the Mandelbrot
// set. It has no program to evolve; Mutate resets it to the default window.
type MandelbrotPiece struct {
	grid complexGrid
}

// NewMandelbrotPiece returns the default [-2,2]² view.
func NewMandelbrotPiece() *MandelbrotPiece {
	return &MandelbrotPiece{grid: defaultGrid()}
}

// Reset restores the default window.
func (m *MandelbrotPiece) Reset() {
	m.grid = defaultGrid()
}

// Render colors escaped points by escape iteration on a warm ramp and
// interior points black.
func (m *MandelbrotPiece) Render(img *Image) {
	for y := 0; y < img.Height; y++ {
		yPercent := float64(y) / float64(img.Height)
		for x := 0; x < img.Width; x++ {
			xPercent := float64(x) / float64(img.Width)
			point := m.grid.at(xPercent, yPercent)

			iters, escaped := fractal.Mandelbrot(point, mandelbrotIters, mandelbrotEscape)
			if !escaped {
				img.Set(x, y, Color{})
				continue
			}
			img.Set(x, y, rampColor(float64(iters)/float64(mandelbrotIters)))
		}
	}
}

// rampColor maps [0,1] onto a black-red-yellow-white ramp.
func rampColor(p float64) Color {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	v := p * 3.0
	clamp := func(x float64) uint8 {
		if x < 0 {
			return 0
		}
		if x > 255 {
			return 255
		}
		return uint8(x)
	}
	return Color{
		R: clamp(v * 255),
		G: clamp((v - 1) * 255),
		B: clamp((v - 2) * 255),
	}
}
