package mapio

import (
	"strconv"

	"mapwriter/model"
)

// NodeSerializer walks scene-graph nodes and drives a MapSerializer
// backend through the begin/properties/children/end protocol of the map
// format. It owns the per-pass entity and brush counters and the id
// registries for layers and groups. Construct a fresh one per pass; ids
// are not stable across passes.
type NodeSerializer struct {
	backend MapSerializer

	layerIds *idManager
	groupIds *idManager

	entityNo  int
	brushNo   int
	exporting bool
}

func NewNodeSerializer(backend MapSerializer) *NodeSerializer {
	return &NodeSerializer{
		backend:  backend,
		layerIds: newIdManager(),
		groupIds: newIdManager(),
	}
}

// EntityNo is the number of entities emitted so far in this file.
func (s *NodeSerializer) EntityNo() int {
	return s.entityNo
}

// BrushNo is the number of brushes emitted so far in the current entity.
func (s *NodeSerializer) BrushNo() int {
	return s.brushNo
}

func (s *NodeSerializer) Exporting() bool {
	return s.exporting
}

// SetExporting enables export mode: content flagged omit-from-export is
// suppressed.
func (s *NodeSerializer) SetExporting(exporting bool) {
	s.exporting = exporting
}

func (s *NodeSerializer) BeginFile(rootNodes []model.Node) error {
	s.entityNo = 0
	s.brushNo = 0
	return s.backend.BeginFile(rootNodes)
}

func (s *NodeSerializer) EndFile() error {
	return s.backend.EndFile()
}

// DefaultLayer writes the worldspawn entity. The default layer's
// attributes are folded into the world's own properties instead of
// producing a layer entity of their own; attributes that are unset must
// also disappear from a world that still carries them from an earlier
// save.
func (s *NodeSerializer) DefaultLayer(world *model.WorldNode) error {
	worldEntity := world.Entity.Clone()
	defaultLayer := world.DefaultLayer()

	if defaultLayer.Color != nil {
		worldEntity.AddOrUpdateProperty(model.KeyLayerColor, defaultLayer.Color.String())
	} else {
		worldEntity.RemoveProperty(model.KeyLayerColor)
	}

	if defaultLayer.LockState == model.LockLocked {
		worldEntity.AddOrUpdateProperty(model.KeyLayerLocked, model.ValueFlagSet)
	} else {
		worldEntity.RemoveProperty(model.KeyLayerLocked)
	}

	if defaultLayer.Hidden {
		worldEntity.AddOrUpdateProperty(model.KeyLayerHidden, model.ValueFlagSet)
	} else {
		worldEntity.RemoveProperty(model.KeyLayerHidden)
	}

	if defaultLayer.OmitFromExport {
		worldEntity.AddOrUpdateProperty(model.KeyLayerOmitFromExport, model.ValueFlagSet)
	} else {
		worldEntity.RemoveProperty(model.KeyLayerOmitFromExport)
	}

	if s.exporting && defaultLayer.OmitFromExport {
		// Keep an empty worldspawn so consumers of the format still find
		// one. Custom layers are skipped outright instead; the asymmetry
		// is deliberate.
		if err := s.beginEntity(world, nil, nil); err != nil {
			return err
		}
		return s.endEntity(world)
	}
	return s.Entity(world, worldEntity.Properties(), nil, defaultLayer)
}

// CustomLayer writes a named layer as a func_group entity, or nothing at
// all if export mode omits it.
func (s *NodeSerializer) CustomLayer(layer *model.LayerNode) error {
	if s.exporting && layer.OmitFromExport {
		return nil
	}
	return s.Entity(layer, s.layerProperties(layer), nil, layer)
}

// Group writes a group as a func_group entity. parentProperties carries
// the group's own layer or group back-reference.
func (s *NodeSerializer) Group(group *model.GroupNode, parentProperties []model.EntityProperty) error {
	return s.Entity(group, s.groupProperties(group), parentProperties, group)
}

// Entity writes one entity block, sourcing brushes from brushParent's
// children. Non-brush children are not valid inside an entity block and
// are skipped; the caller serializes them through their own top-level
// calls.
func (s *NodeSerializer) Entity(node model.Node, properties, parentProperties []model.EntityProperty, brushParent model.Node) error {
	if err := s.beginEntity(node, properties, parentProperties); err != nil {
		return err
	}
	for _, child := range brushParent.Children() {
		if brush, ok := child.(*model.BrushNode); ok {
			if err := s.Brush(brush); err != nil {
				return err
			}
		}
	}
	return s.endEntity(node)
}

// EntityWithBrushes writes one entity block from an explicit brush list.
func (s *NodeSerializer) EntityWithBrushes(node model.Node, properties, parentProperties []model.EntityProperty, brushes []*model.BrushNode) error {
	if err := s.beginEntity(node, properties, parentProperties); err != nil {
		return err
	}
	for _, brush := range brushes {
		if err := s.Brush(brush); err != nil {
			return err
		}
	}
	return s.endEntity(node)
}

func (s *NodeSerializer) beginEntity(node model.Node, properties, extraProperties []model.EntityProperty) error {
	s.brushNo = 0
	if err := s.backend.BeginEntity(node); err != nil {
		return err
	}
	if err := s.entityProperties(properties); err != nil {
		return err
	}
	return s.entityProperties(extraProperties)
}

func (s *NodeSerializer) endEntity(node model.Node) error {
	if err := s.backend.EndEntity(node); err != nil {
		return err
	}
	s.entityNo++
	return nil
}

func (s *NodeSerializer) entityProperties(properties []model.EntityProperty) error {
	for _, property := range properties {
		if err := s.backend.EntityProperty(property); err != nil {
			return err
		}
	}
	return nil
}

func (s *NodeSerializer) Brush(brush *model.BrushNode) error {
	if err := s.backend.Brush(brush); err != nil {
		return err
	}
	s.brushNo++
	return nil
}

func (s *NodeSerializer) BrushFaces(faces []model.BrushFace) error {
	for i := range faces {
		if err := s.BrushFace(&faces[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *NodeSerializer) BrushFace(face *model.BrushFace) error {
	return s.backend.BrushFace(face)
}

// ParentProperties returns the back-reference property a child of node
// carries: a layer id below a layer, a group id below a group, nothing
// otherwise. A nil node yields nothing, which is how default-layer
// content stays free of back-references.
func (s *NodeSerializer) ParentProperties(node model.Node) []model.EntityProperty {
	switch parent := node.(type) {
	case *model.LayerNode:
		return []model.EntityProperty{{Key: model.KeyLayer, Value: s.layerIds.getId(parent)}}
	case *model.GroupNode:
		return []model.EntityProperty{{Key: model.KeyGroup, Value: s.groupIds.getId(parent)}}
	}
	return nil
}

func (s *NodeSerializer) layerProperties(layer *model.LayerNode) []model.EntityProperty {
	properties := []model.EntityProperty{
		{Key: model.KeyClassname, Value: model.ValueGroupClassname},
		{Key: model.KeyGroupType, Value: model.ValueGroupTypeLayer},
		{Key: model.KeyName, Value: layer.Name},
		{Key: model.KeyId, Value: s.layerIds.getId(layer)},
	}

	if layer.SortIndex != nil {
		properties = append(properties, model.EntityProperty{
			Key: model.KeyLayerSortIndex, Value: strconv.Itoa(*layer.SortIndex)})
	}
	if layer.LockState == model.LockLocked {
		properties = append(properties, model.EntityProperty{
			Key: model.KeyLayerLocked, Value: model.ValueFlagSet})
	}
	if layer.Hidden {
		properties = append(properties, model.EntityProperty{
			Key: model.KeyLayerHidden, Value: model.ValueFlagSet})
	}
	if layer.OmitFromExport {
		properties = append(properties, model.EntityProperty{
			Key: model.KeyLayerOmitFromExport, Value: model.ValueFlagSet})
	}
	return properties
}

func (s *NodeSerializer) groupProperties(group *model.GroupNode) []model.EntityProperty {
	properties := []model.EntityProperty{
		{Key: model.KeyClassname, Value: model.ValueGroupClassname},
		{Key: model.KeyGroupType, Value: model.ValueGroupTypeGroup},
		{Key: model.KeyName, Value: group.Name},
		{Key: model.KeyId, Value: s.groupIds.getId(group)},
	}
	if group.LinkedGroupId != nil {
		properties = append(properties, model.EntityProperty{
			Key: model.KeyLinkedGroupId, Value: group.LinkedGroupId.String()})
	}
	return properties
}
