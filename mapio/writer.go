package mapio

import (
	log "github.com/sirupsen/logrus"

	"mapwriter/model"
)

// NodeWriter drives one full serialization pass over a world: worldspawn
// with the default layer's content first, then each custom layer with its
// groups and entities.
type NodeWriter struct {
	world      *model.WorldNode
	serializer *NodeSerializer
}

func NewNodeWriter(world *model.WorldNode, backend MapSerializer) *NodeWriter {
	return &NodeWriter{
		world:      world,
		serializer: NewNodeSerializer(backend),
	}
}

// SetExporting suppresses content flagged omit-from-export for this pass.
func (w *NodeWriter) SetExporting(exporting bool) {
	w.serializer.SetExporting(exporting)
}

// EntityCount is the number of entities written so far.
func (w *NodeWriter) EntityCount() int {
	return w.serializer.EntityNo()
}

func (w *NodeWriter) WriteMap() error {
	if err := w.serializer.BeginFile([]model.Node{w.world}); err != nil {
		return err
	}
	if err := w.serializer.DefaultLayer(w.world); err != nil {
		return err
	}
	// Default-layer content carries no layer back-reference. An omitted
	// default layer keeps its empty worldspawn shell but loses its
	// contents, same as an omitted custom layer loses everything.
	if !(w.serializer.Exporting() && w.world.DefaultLayer().OmitFromExport) {
		if err := w.writeContents(w.world.DefaultLayer(), nil); err != nil {
			return err
		}
	}
	for _, layer := range w.world.CustomLayers() {
		if w.serializer.Exporting() && layer.OmitFromExport {
			continue
		}
		if err := w.serializer.CustomLayer(layer); err != nil {
			return err
		}
		if err := w.writeContents(layer, layer); err != nil {
			return err
		}
	}
	return w.serializer.EndFile()
}

// writeContents emits the groups and entities below parent. Brushes are
// covered by the parent's own entity block. ref is the node children
// reference back to, nil below the default layer.
func (w *NodeWriter) writeContents(parent, ref model.Node) error {
	for _, child := range parent.Children() {
		switch node := child.(type) {
		case *model.GroupNode:
			if err := w.serializer.Group(node, w.serializer.ParentProperties(ref)); err != nil {
				return err
			}
			if err := w.writeContents(node, node); err != nil {
				return err
			}
		case *model.EntityNode:
			if err := w.serializer.Entity(node, node.Entity.Properties(), w.serializer.ParentProperties(ref), node); err != nil {
				return err
			}
		case *model.BrushNode:
			// Already written with the parent's block.
		default:
			log.Warn("unexpected node below ", parent)
		}
	}
	return nil
}
