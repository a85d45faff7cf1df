package animset

import (
	"errors"
	"fmt"

	"github.com/GeoffIX/PoserLib/host"
)

// NameAttribute is the attribute key holding a set's name.
const NameAttribute = "Name"

// ErrNoSuchAttribute indicates the set has no attribute with the key.
var ErrNoSuchAttribute = errors.New("animset: no such attribute")

// DefaultName returns the display name of the n-th set (1-based) that has no
// Name attribute.
func DefaultName(n int) string { return fmt.Sprintf("AnimSet %d", n) }

// Name returns the display name of set, which is the n-th set of its scene:
// its Name attribute, else the name the host reports, else DefaultName(n).
func Name(set host.AnimSet, n int) string {
	if v, ok := attribute(set, NameAttribute); ok {
		return v
	}
	if q, ok := set.(host.AnimSetNamer); ok {
		if v, err := q.Name(); err == nil && v != "" {
			return v
		}
	}

	return DefaultName(n)
}

// Names lists the display names of every set of s in scene order.
func Names(s host.Scene) []string {
	sets := s.AnimSets()
	out := make([]string, len(sets))
	for i, set := range sets {
		out[i] = Name(set, i+1)
	}

	return out
}

// Attribute returns the value of key on the set called name.
func Attribute(s host.Scene, name, key string) (string, error) {
	set, err := s.AnimSet(name)
	if err != nil {
		return "", fmt.Errorf("animset: Attribute %s: %w", name, err)
	}
	v, ok := attribute(set, key)
	if !ok {
		return "", fmt.Errorf("animset: %s %s: %w", name, key, ErrNoSuchAttribute)
	}

	return v, nil
}

func attribute(set host.AnimSet, key string) (string, bool) {
	for _, a := range set.Attributes() {
		if a.Key == key {
			return a.Value, true
		}
	}

	return "", false
}

// Group is one actor and the parameters of a set that belong to it.
type Group struct {
	Actor  host.Actor
	Params []host.Parameter
}

// ActorParameters groups the parameters of the set called name by owning
// actor, in the order each actor first appears in the set.
func ActorParameters(s host.Scene, name string) ([]Group, error) {
	set, err := s.AnimSet(name)
	if err != nil {
		return nil, fmt.Errorf("animset: ActorParameters %s: %w", name, err)
	}

	var groups []Group
	index := make(map[host.Actor]int)
	for _, p := range set.Parameters() {
		a := p.Actor()
		i, ok := index[a]
		if !ok {
			i = len(groups)
			index[a] = i
			groups = append(groups, Group{Actor: a})
		}
		groups[i].Params = append(groups[i].Params, p)
	}

	return groups, nil
}
