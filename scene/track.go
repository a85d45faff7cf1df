package scene

import (
	"sort"

	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/interp"
)

// Key is one keyframe of a parameter track. Interp governs the segment that
// starts at this key.
type Key struct {
	Frame  int
	Value  float64
	Interp host.Interpolation
	Break  bool
}

// Track is a frame-sorted keyframe list.
type Track struct {
	keys []Key
}

// Len returns the number of keys.
func (t *Track) Len() int { return len(t.keys) }

// Keys returns a copy of the keys in frame order.
func (t *Track) Keys() []Key {
	out := make([]Key, len(t.keys))
	copy(out, t.keys)

	return out
}

// Set inserts or replaces the key at k.Frame.
func (t *Track) Set(k Key) {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].Frame >= k.Frame })
	if i < len(t.keys) && t.keys[i].Frame == k.Frame {
		t.keys[i] = k
		return
	}
	t.keys = append(t.keys, Key{})
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = k
}

// Delete removes the key at frame, reporting whether one existed.
func (t *Track) Delete(frame int) bool {
	i, ok := t.find(frame)
	if !ok {
		return false
	}
	t.keys = append(t.keys[:i], t.keys[i+1:]...)

	return true
}

// Has reports whether a key exists exactly at frame.
func (t *Track) Has(frame int) bool {
	_, ok := t.find(frame)
	return ok
}

func (t *Track) find(frame int) (int, bool) {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].Frame >= frame })
	if i < len(t.keys) && t.keys[i].Frame == frame {
		return i, true
	}

	return i, false
}

// governing returns the index of the key whose segment contains frame.
// The first key governs frames before it. Requires at least one key.
func (t *Track) governing(frame int) int {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].Frame > frame }) - 1
	if i < 0 {
		return 0
	}

	return i
}

// Mode returns the interpolation mode in effect at frame and whether a spline
// break is set on a key at that frame. An empty track reports spline.
func (t *Track) Mode(frame int) (host.Interpolation, bool) {
	if len(t.keys) == 0 {
		return host.InterpSpline, false
	}
	mode := t.keys[t.governing(frame)].Interp
	if i, ok := t.find(frame); ok {
		return mode, t.keys[i].Break
	}

	return mode, false
}

// At evaluates the track at frame. Frames outside the keyed range hold the
// nearest key's value; an empty track yields fallback.
func (t *Track) At(frame int, fallback float64) float64 {
	n := len(t.keys)
	if n == 0 {
		return fallback
	}
	if frame <= t.keys[0].Frame {
		return t.keys[0].Value
	}
	if frame >= t.keys[n-1].Frame {
		return t.keys[n-1].Value
	}

	i := t.governing(frame)
	k0, k1 := t.keys[i], t.keys[i+1]
	u := float64(frame-k0.Frame) / float64(k1.Frame-k0.Frame)
	switch k0.Interp {
	case host.InterpConstant:
		return k0.Value
	case host.InterpLinear:
		return interp.Lerp(k0.Value, k1.Value, u)
	default:
		h := float64(k1.Frame - k0.Frame)
		return interp.Hermite(k0.Value, k1.Value, t.slope(i)*h, t.slope(i+1)*h, u)
	}
}

// slope is the Catmull-Rom tangent at key i. End keys and break keys are flat.
func (t *Track) slope(i int) float64 {
	if i <= 0 || i >= len(t.keys)-1 || t.keys[i].Break {
		return 0
	}
	prev, next := t.keys[i-1], t.keys[i+1]

	return (next.Value - prev.Value) / float64(next.Frame-prev.Frame)
}
