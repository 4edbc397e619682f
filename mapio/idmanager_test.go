package mapio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mapwriter/model"
)

func TestIdManagerStableIds(t *testing.T) {
	m := newIdManager()
	a := model.NewLayerNode("a")
	b := model.NewLayerNode("b")

	assert.Equal(t, "1", m.getId(a))
	assert.Equal(t, "2", m.getId(b))
	// Repeated lookups return the cached id.
	assert.Equal(t, "1", m.getId(a))
	assert.Equal(t, "2", m.getId(b))
}

func TestIdManagerIdentityNotEquality(t *testing.T) {
	m := newIdManager()
	// Two structurally identical nodes still get distinct ids.
	a := model.NewLayerNode("same")
	b := model.NewLayerNode("same")

	assert.NotEqual(t, m.getId(a), m.getId(b))
}

func TestIdRegistriesAreIndependent(t *testing.T) {
	s := NewNodeSerializer(&recordingBackend{})
	layer := model.NewLayerNode("Detail")
	group := model.NewGroupNode("Crates")

	// A layer and a group may share the same numeric id; the registries
	// do not collide in meaning.
	assert.Equal(t, "1", s.layerIds.getId(layer))
	assert.Equal(t, "1", s.groupIds.getId(group))
}
