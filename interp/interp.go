package interp

import (
	"sort"

	"github.com/GeoffIX/PoserLib/host"
)

// Kind is the interpolation order selected for a control point count.
type Kind int

// Interpolation orders.
const (
	Zero Kind = iota
	Constant
	Linear
	Quadratic
	Cubic
)

// String returns the order name.
func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return "zero"
	}
}

// KindFor returns the order Estimate uses for n distinct control points.
func KindFor(n int) Kind {
	switch {
	case n <= 0:
		return Zero
	case n == 1:
		return Constant
	case n == 2:
		return Linear
	case n == 3:
		return Quadratic
	default:
		return Cubic
	}
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Estimate evaluates the control points at x using the order chosen by
// KindFor. Three points use a quadratic approximation.
func Estimate(points []host.ControlPoint, x float64) float64 {
	return evaluate(points, x, true)
}

// Curve evaluates the control points at x the way the reference host does:
// like Estimate, except three points use a natural cubic spline.
func Curve(points []host.ControlPoint, x float64) float64 {
	return evaluate(points, x, false)
}

func evaluate(points []host.ControlPoint, x float64, quadratic bool) float64 {
	pts := normalize(points)
	n := len(pts)
	kind := KindFor(n)
	switch kind {
	case Zero:
		return 0
	case Constant:
		return pts[0].Value
	}

	// Hold end values outside the key range.
	if x <= pts[0].Key {
		return pts[0].Value
	}
	if x >= pts[n-1].Key {
		return pts[n-1].Value
	}

	switch {
	case kind == Linear:
		return linearAt(pts, x)
	case kind == Quadratic && quadratic:
		return quadraticAt(pts, x)
	default:
		return naturalCubicAt(pts, x)
	}
}

// normalize returns the points sorted by key with duplicate keys collapsed
// (the later point wins). The input is not modified.
func normalize(points []host.ControlPoint) []host.ControlPoint {
	if len(points) == 0 {
		return nil
	}
	pts := make([]host.ControlPoint, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Key < pts[j].Key })

	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Key == out[len(out)-1].Key {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}

	return out
}

func linearAt(pts []host.ControlPoint, x float64) float64 {
	i := segment(pts, x)
	p0, p1 := pts[i], pts[i+1]

	return Lerp(p0.Value, p1.Value, (x-p0.Key)/(p1.Key-p0.Key))
}

// quadraticAt evaluates the Lagrange polynomial through exactly three points.
func quadraticAt(pts []host.ControlPoint, x float64) float64 {
	x0, x1, x2 := pts[0].Key, pts[1].Key, pts[2].Key
	l0 := (x - x1) * (x - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (x - x0) * (x - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (x - x0) * (x - x1) / ((x2 - x0) * (x2 - x1))

	return pts[0].Value*l0 + pts[1].Value*l1 + pts[2].Value*l2
}

// naturalCubicAt evaluates a natural cubic spline (zero second derivative at
// both ends) through the points.
func naturalCubicAt(pts []host.ControlPoint, x float64) float64 {
	m := secondDerivatives(pts)
	i := segment(pts, x)
	h := pts[i+1].Key - pts[i].Key
	a := (pts[i+1].Key - x) / h
	b := (x - pts[i].Key) / h

	return a*pts[i].Value + b*pts[i+1].Value +
		((a*a*a-a)*m[i]+(b*b*b-b)*m[i+1])*h*h/6
}

// secondDerivatives solves the tridiagonal system for the spline's second
// derivatives at each knot.
func secondDerivatives(pts []host.ControlPoint) []float64 {
	n := len(pts)
	m := make([]float64, n)
	u := make([]float64, n)
	for i := 1; i < n-1; i++ {
		sig := (pts[i].Key - pts[i-1].Key) / (pts[i+1].Key - pts[i-1].Key)
		p := sig*m[i-1] + 2
		m[i] = (sig - 1) / p
		d := (pts[i+1].Value-pts[i].Value)/(pts[i+1].Key-pts[i].Key) -
			(pts[i].Value-pts[i-1].Value)/(pts[i].Key-pts[i-1].Key)
		u[i] = (6*d/(pts[i+1].Key-pts[i-1].Key) - sig*u[i-1]) / p
	}
	m[n-1] = 0
	for k := n - 2; k >= 0; k-- {
		m[k] = m[k]*m[k+1] + u[k]
	}

	return m
}

// segment returns i such that pts[i].Key <= x < pts[i+1].Key.
// x must lie strictly inside the key range.
func segment(pts []host.ControlPoint, x float64) int {
	i := sort.Search(len(pts), func(i int) bool { return pts[i].Key > x }) - 1
	if i < 0 {
		i = 0
	}
	if i > len(pts)-2 {
		i = len(pts) - 2
	}

	return i
}

// Hermite evaluates the cubic Hermite basis between p0 and p1 with tangents
// m0 and m1 (already scaled to the segment length) at t in [0,1].
func Hermite(p0, p1, m0, m1, t float64) float64 {
	t2 := t * t
	t3 := t2 * t

	return (2*t3-3*t2+1)*p0 + (t3-2*t2+t)*m0 + (-2*t3+3*t2)*p1 + (t3-t2)*m1
}
