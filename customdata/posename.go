package customdata

import (
	"path/filepath"
	"strings"

	"github.com/GeoffIX/PoserLib/host"
)

// Options controls PoseName.
type Options struct {
	// UseLast falls back to the plain PoseName when the frame has none.
	UseLast bool
	// BaseOnly drops any directory part of the name.
	BaseOnly bool
	// StripExt drops the file extension.
	StripExt bool
	// ActorFirst looks at the actor before the figure.
	ActorFirst bool
}

// Option mutates Options.
type Option func(*Options)

// UseLast enables the plain PoseName fallback.
func UseLast() Option { return func(o *Options) { o.UseLast = true } }

// BaseOnly returns the base name only.
func BaseOnly() Option { return func(o *Options) { o.BaseOnly = true } }

// StripExt removes the extension.
func StripExt() Option { return func(o *Options) { o.StripExt = true } }

// ActorFirst consults the actor before the figure.
func ActorFirst() Option { return func(o *Options) { o.ActorFirst = true } }

// PoseName returns the pose name recorded for frame and the key it was found
// under. The figure's name wins over the actor's unless ActorFirst is set,
// in which case the figure is still tried when the actor has none. Pass a
// nil interface for an absent figure or actor.
func PoseName(fig, actor host.CustomDataStore, frame int, opts ...Option) (name, key string, ok bool) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	order := []host.CustomDataStore{fig}
	switch {
	case o.ActorFirst:
		order = []host.CustomDataStore{actor, fig}
	case fig == nil:
		order = []host.CustomDataStore{actor}
	}

	for _, obj := range order {
		if obj == nil {
			continue
		}
		if name, key, ok = lookup(obj, frame, o.UseLast); ok {
			return trim(name, o), key, true
		}
	}

	return "", "", false
}

func lookup(obj host.CustomDataStore, frame int, useLast bool) (string, string, bool) {
	keys := Keys(obj)
	has := func(k string) bool {
		for _, x := range keys {
			if x == k {
				return true
			}
		}
		return false
	}

	fk := FrameKey(frame)
	if has(fk) {
		if v, ok := obj.CustomData(fk); ok {
			return v, fk, true
		}
	}
	if useLast && has(PoseNameKey) {
		if v, ok := obj.CustomData(PoseNameKey); ok {
			return v, PoseNameKey, true
		}
	}

	return "", "", false
}

// trim applies BaseOnly and StripExt. Both separators are honored because
// pose paths travel between platforms.
func trim(name string, o Options) string {
	if o.BaseOnly {
		if i := strings.LastIndexAny(name, `/\`); i >= 0 {
			name = name[i+1:]
		}
	}
	if o.StripExt {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	return name
}
