package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Node is an element of the editable scene graph. The serializer only
// traverses nodes, it never mutates them.
type Node interface {
	Children() []Node
}

type WorldNode struct {
	Entity Entity

	defaultLayer *LayerNode
	children     []Node
}

// NewWorldNode returns a world with its default layer already attached.
// The default layer is always present and is never emitted as a separate
// entity; its attributes fold into the world's own property set.
func NewWorldNode() *WorldNode {
	defaultLayer := NewLayerNode("Default Layer")
	return &WorldNode{
		defaultLayer: defaultLayer,
		children:     []Node{defaultLayer},
	}
}

func (w *WorldNode) Children() []Node {
	return w.children
}

func (w *WorldNode) DefaultLayer() *LayerNode {
	return w.defaultLayer
}

// AddLayer attaches a custom layer after the default one.
func (w *WorldNode) AddLayer(layer *LayerNode) {
	w.children = append(w.children, layer)
}

func (w *WorldNode) CustomLayers() (layers []*LayerNode) {
	for _, child := range w.children {
		if layer, ok := child.(*LayerNode); ok && layer != w.defaultLayer {
			layers = append(layers, layer)
		}
	}
	return
}

type LayerNode struct {
	Name           string
	Color          *Color
	LockState      LockState
	Hidden         bool
	OmitFromExport bool
	SortIndex      *int

	children []Node
}

func NewLayerNode(name string) *LayerNode {
	return &LayerNode{Name: name}
}

func (l *LayerNode) Children() []Node {
	return l.children
}

func (l *LayerNode) AddChild(node Node) {
	l.children = append(l.children, node)
}

func (l LayerNode) String() string {
	return fmt.Sprintf("Layer %q (%d children)", l.Name, len(l.children))
}

type GroupNode struct {
	Name          string
	LinkedGroupId *uuid.UUID

	children []Node
}

func NewGroupNode(name string) *GroupNode {
	return &GroupNode{Name: name}
}

func (g *GroupNode) Children() []Node {
	return g.children
}

func (g *GroupNode) AddChild(node Node) {
	g.children = append(g.children, node)
}

func (g GroupNode) String() string {
	return fmt.Sprintf("Group %q (%d children)", g.Name, len(g.children))
}

type EntityNode struct {
	Entity Entity

	children []Node
}

func NewEntityNode(properties ...EntityProperty) *EntityNode {
	node := &EntityNode{}
	for _, property := range properties {
		node.Entity.AddOrUpdateProperty(property.Key, property.Value)
	}
	return node
}

func (e *EntityNode) Children() []Node {
	return e.children
}

func (e *EntityNode) AddChild(node Node) {
	e.children = append(e.children, node)
}

// BrushNode is a leaf; it has faces instead of children.
type BrushNode struct {
	Faces []BrushFace
}

func NewBrushNode(faces ...BrushFace) *BrushNode {
	return &BrushNode{Faces: faces}
}

func (b *BrushNode) Children() []Node {
	return nil
}
