package customdata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/GeoffIX/PoserLib/host"
)

// Reserved keys and delimiters.
const (
	ListKey        = "Keys"
	KeyDelimiter   = ";"
	FrameDelimiter = "#"
	PoseNameKey    = "PoseName"
)

// Entry is one custom data value with its persistence flags.
type Entry struct {
	Key                string
	Value              string
	StoreWithPoses     bool
	StoreWithMaterials bool
}

// FrameKey returns the pose name key for frame, e.g. "PoseName#12".
func FrameKey(frame int) string {
	return PoseNameKey + FrameDelimiter + strconv.Itoa(frame)
}

// Keys returns the indexed keys of obj in stored order.
func Keys(obj host.CustomDataStore) []string {
	raw, ok := obj.CustomData(ListKey)
	if !ok || raw == "" {
		return nil
	}

	return strings.Split(raw, KeyDelimiter)
}

// Update writes entries to obj, replicating PoseName for frame, and
// refreshes the key index. New keys are appended to the index in the order
// written.
func Update(obj host.CustomDataStore, frame int, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	keys := Keys(obj)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	for _, e := range entries {
		add(e.Key)
		if err := obj.SetCustomData(e.Key, e.Value, e.StoreWithPoses, e.StoreWithMaterials); err != nil {
			return fmt.Errorf("customdata: %s: Update %s: %w", obj.Name(), e.Key, err)
		}
		if e.Key != PoseNameKey {
			continue
		}
		fk := FrameKey(frame)
		add(fk)
		if err := obj.SetCustomData(fk, e.Value, e.StoreWithPoses, e.StoreWithMaterials); err != nil {
			return fmt.Errorf("customdata: %s: Update %s: %w", obj.Name(), fk, err)
		}
	}

	if err := obj.SetCustomData(ListKey, strings.Join(keys, KeyDelimiter), false, false); err != nil {
		return fmt.Errorf("customdata: %s: Update %s: %w", obj.Name(), ListKey, err)
	}

	return nil
}

// List returns every indexed entry of obj except the index itself, sorted
// with NaturalLess. Keys listed in the index without a stored value are
// skipped.
func List(obj host.CustomDataStore) []Entry {
	keys := Keys(obj)
	sort.SliceStable(keys, func(i, j int) bool { return NaturalLess(keys[i], keys[j]) })

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if k == ListKey {
			continue
		}
		if v, ok := obj.CustomData(k); ok {
			out = append(out, Entry{Key: k, Value: v})
		}
	}

	return out
}

// Record is a custom data entry together with its owner's name.
type Record struct {
	Object string
	Entry
}

// ListScene lists the indexed entries of every actor, then every figure,
// of s.
func ListScene(s host.Scene) []Record {
	var out []Record
	collect := func(obj any) {
		store, ok := obj.(host.CustomDataStore)
		if !ok {
			return
		}
		for _, e := range List(store) {
			out = append(out, Record{Object: store.Name(), Entry: e})
		}
	}
	for _, a := range s.Actors() {
		collect(a)
	}
	for _, f := range s.Figures() {
		collect(f)
	}

	return out
}
