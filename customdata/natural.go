package customdata

import "strings"

// NaturalLess orders strings with embedded decimal numbers by numeric value,
// so "PoseName#2" sorts before "PoseName#10".
func NaturalLess(a, b string) bool {
	ca, cb := chunks(a), chunks(b)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] == cb[i] {
			continue
		}
		// Even chunks are text, odd chunks are digit runs.
		if i%2 == 1 {
			return numLess(ca[i], cb[i])
		}
		return ca[i] < cb[i]
	}

	return len(ca) < len(cb)
}

// chunks splits s into alternating text and digit runs, always starting with
// a (possibly empty) text run.
func chunks(s string) []string {
	var out []string
	start, digits := 0, false
	for i := 0; i < len(s); i++ {
		d := s[i] >= '0' && s[i] <= '9'
		if d != digits {
			out = append(out, s[start:i])
			start, digits = i, d
		}
	}

	return append(out, s[start:])
}

// numLess compares digit runs of any length numerically.
func numLess(a, b string) bool {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
