// Package art adapts the two language engines (and the Mandelbrot fractal)
// into evolvable art pieces: things with a reset/update/render/mutate
// lifecycle that a driver steps once per frame and occasionally mutates into
// a descendant.
package art

// Color is one RGB pixel.
type Color struct {
	R, G, B uint8
}

// Image is the in-memory render target. Pieces draw into it; what happens to
// it afterwards (blitting, encoding) is the driver's business.
type Image struct {
	Width  int
	Height int
	Pix    []Color
}

// NewImage allocates a black image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// At returns the pixel at (x, y).
func (img *Image) At(x, y int) Color {
	return img.Pix[y*img.Width+x]
}

// Set writes the pixel at (x, y).
func (img *Image) Set(x, y int, c Color) {
	img.Pix[y*img.Width+x] = c
}

// Inputs carries the per-frame sample inputs a driver feeds into Update.
type Inputs struct {
	MouseX int64
	MouseY int64
	KeyX   int64
	KeyY   int64
}
