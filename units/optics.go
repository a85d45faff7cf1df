package units

// HyperFocal returns the hyperfocal distance for focal length f, f-stop n
// and circle of confusion c.
func HyperFocal(f, n, c float64) float64 {
	return f + (f*f)/(n*c)
}

// FStop returns the f-stop that puts the hyperfocal distance at focus
// distance s.
func FStop(f, s, c float64) float64 {
	return (f * f) / ((s - f) * c)
}

// NearFocus returns the near limit of acceptable sharpness when focused at s.
func NearFocus(f, n, c, s float64) float64 {
	h := HyperFocal(f, n, c)
	return s * (h - f) / (h + s - 2*f)
}

// FarFocus returns the far limit of acceptable sharpness when focused at s.
// At or past the hyperfocal distance the result is infinite or negative;
// callers treat both as infinity.
func FarFocus(f, n, c, s float64) float64 {
	h := HyperFocal(f, n, c)
	return s * (h - f) / (h - s)
}
