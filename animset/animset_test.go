package animset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffIX/PoserLib/animset"
	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/scene"
)

func TestNames(t *testing.T) {
	build := func(opts ...scene.Option) *scene.Scene {
		s := scene.New(opts...)
		s.AddAnimSet("first")
		_, err := s.CreateAnimSet("Walk")
		require.NoError(t, err)
		s.AddAnimSet("third")
		return s
	}

	assert.Equal(t, []string{"first", "Walk", "third"}, animset.Names(build()))
	assert.Equal(t, []string{"AnimSet 1", "Walk", "AnimSet 3"}, animset.Names(build(scene.WithoutAnimSetNames())))
}

func TestAttribute(t *testing.T) {
	s := scene.New()
	set := s.AddAnimSet("Walk")
	set.AddAttribute("Author", "me")

	v, err := animset.Attribute(s, "Walk", "Author")
	require.NoError(t, err)
	assert.Equal(t, "me", v)

	_, err = animset.Attribute(s, "Walk", "Licence")
	assert.ErrorIs(t, err, animset.ErrNoSuchAttribute)
	_, err = animset.Attribute(s, "Run", "Author")
	assert.ErrorIs(t, err, host.ErrNoSuchAnimSet)
}

func TestActorParameters(t *testing.T) {
	s := scene.New()
	fig := s.AddFigure("Andy")
	hip := s.AddActor("hip", fig)
	chest := s.AddActor("chest", fig)
	bend, twist := hip.AddParameter("bend", 0), hip.AddParameter("twist", 0)
	side := chest.AddParameter("side", 0)

	set := s.AddAnimSet("Walk")
	set.AddParameter(side)
	set.AddParameter(bend)
	set.AddParameter(twist)

	groups, err := animset.ActorParameters(s, "Walk")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "chest", groups[0].Actor.Name())
	assert.Equal(t, []host.Parameter{side}, groups[0].Params)
	assert.Equal(t, "hip", groups[1].Actor.Name())
	assert.Equal(t, []host.Parameter{bend, twist}, groups[1].Params)

	_, err = animset.ActorParameters(s, "Run")
	assert.ErrorIs(t, err, host.ErrNoSuchAnimSet)
}
