// Package interp evaluates the piecewise functions used by keyed value
// operations and keyframe tracks.
//
// The interpolation order of a keyed operation is implied by its number of
// control points:
//
//	n == 0  zero
//	n == 1  constant
//	n == 2  linear
//	n == 3  quadratic (Estimate) or natural cubic (Curve)
//	n >= 4  natural cubic spline
//
// Outside the key range both functions hold the value of the nearest end
// point.
//
// Estimate is the approximation used when a dial value is inferred
// analytically. For exactly three points it fits a quadratic, which is known
// NOT to match the host's own (undocumented) interpolation. Curve is the
// reference curve used by the in-memory scene; the two agree for every point
// count except three.
package interp
