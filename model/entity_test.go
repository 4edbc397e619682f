package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityPreservesInsertionOrder(t *testing.T) {
	var e Entity
	e.AddOrUpdateProperty("classname", "worldspawn")
	e.AddOrUpdateProperty("message", "hello")
	e.AddOrUpdateProperty("wad", "quake.wad")

	assert.Equal(t, []EntityProperty{
		{Key: "classname", Value: "worldspawn"},
		{Key: "message", Value: "hello"},
		{Key: "wad", Value: "quake.wad"},
	}, e.Properties())
}

func TestEntityUpdateKeepsPosition(t *testing.T) {
	var e Entity
	e.AddOrUpdateProperty("classname", "worldspawn")
	e.AddOrUpdateProperty("message", "hello")
	e.AddOrUpdateProperty("classname", "func_group")

	assert.Equal(t, []EntityProperty{
		{Key: "classname", Value: "func_group"},
		{Key: "message", Value: "hello"},
	}, e.Properties())
}

func TestEntityRemoveProperty(t *testing.T) {
	var e Entity
	e.AddOrUpdateProperty("a", "1")
	e.AddOrUpdateProperty("b", "2")
	e.AddOrUpdateProperty("c", "3")

	e.RemoveProperty("b")
	assert.Equal(t, []EntityProperty{
		{Key: "a", Value: "1"},
		{Key: "c", Value: "3"},
	}, e.Properties())

	// Removing an absent key is a no-op.
	e.RemoveProperty("missing")
	assert.Len(t, e.Properties(), 2)
}

func TestEntityCloneIsIndependent(t *testing.T) {
	var e Entity
	e.AddOrUpdateProperty("classname", "worldspawn")

	clone := e.Clone()
	clone.AddOrUpdateProperty("classname", "changed")
	clone.AddOrUpdateProperty("extra", "1")

	value, found := e.Property("classname")
	assert.True(t, found)
	assert.Equal(t, "worldspawn", value)
	assert.False(t, e.HasProperty("extra"))
}

func TestWorldNodeLayers(t *testing.T) {
	world := NewWorldNode()
	assert.NotNil(t, world.DefaultLayer())
	assert.Empty(t, world.CustomLayers())

	detail := NewLayerNode("Detail")
	world.AddLayer(detail)
	assert.Equal(t, []*LayerNode{detail}, world.CustomLayers())
	// The default layer is a child but never a custom layer.
	assert.Len(t, world.Children(), 2)
}
