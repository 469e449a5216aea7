// Package fractal evaluates escape-time fractals for the Mandelbrot art
// piece.
package fractal

// Mandelbrot iterates z = z^2 + c from z = c. If the point escapes the
// given radius it returns the escape iteration and escaped=true; if it is
// still inside after maxIters iterations it returns escaped=false.
func Mandelbrot(point complex128, maxIters int, escapeRadius float64) (iters int, escaped bool) {
	init := point
	for i := 0; ; i++ {
		if i > maxIters {
			return 0, false
		}
		// Squared magnitude against squared radius; no need for a sqrt
		// per iteration.
		if real(point)*real(point)+imag(point)*imag(point) > escapeRadius*escapeRadius {
			return i, true
		}
		point = point*point + init
	}
}
