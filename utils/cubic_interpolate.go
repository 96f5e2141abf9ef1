// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples at x in [0, 1], where x = 0 yields y1 and x = 1 yields y2. Linear
// input is reproduced exactly up to rounding.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	// Horner form of a0*x^3 + a1*x^2 + a2*x + y1.
	return ((a0*x+a1)*x+a2)*x + y1
}
