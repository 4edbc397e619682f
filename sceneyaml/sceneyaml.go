// Package sceneyaml loads a YAML scene description and builds the
// scene-graph nodes the map serializer consumes.
package sceneyaml

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"mapwriter/model"
)

type Document struct {
	World World `yaml:"world"`
}

type World struct {
	Properties   []Property `yaml:"properties"`
	DefaultLayer LayerFlags `yaml:"default_layer"`
	Brushes      []Brush    `yaml:"brushes"`
	Entities     []Entity   `yaml:"entities"`
	Groups       []Group    `yaml:"groups"`
	Layers       []Layer    `yaml:"layers"`
}

// Property is an explicit pair instead of a YAML mapping so document
// order survives decoding.
type Property struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type LayerFlags struct {
	Color          string `yaml:"color"`
	Locked         bool   `yaml:"locked"`
	Hidden         bool   `yaml:"hidden"`
	OmitFromExport bool   `yaml:"omit_from_export"`
}

type Layer struct {
	Name      string `yaml:"name"`
	SortIndex *int   `yaml:"sort_index"`
	LayerFlags `yaml:",inline"`

	Brushes  []Brush  `yaml:"brushes"`
	Entities []Entity `yaml:"entities"`
	Groups   []Group  `yaml:"groups"`
}

type Group struct {
	Name          string `yaml:"name"`
	LinkedGroupId string `yaml:"linked_group_id"`

	Brushes  []Brush  `yaml:"brushes"`
	Entities []Entity `yaml:"entities"`
	Groups   []Group  `yaml:"groups"`
}

type Entity struct {
	Properties []Property `yaml:"properties"`
	Brushes    []Brush    `yaml:"brushes"`
}

type Brush struct {
	Faces []Face `yaml:"faces"`
}

type Face struct {
	Points   [][]float64 `yaml:"points"`
	Texture  string      `yaml:"texture"`
	XOffset  float64     `yaml:"x_offset"`
	YOffset  float64     `yaml:"y_offset"`
	Rotation float64     `yaml:"rotation"`
	XScale   *float64    `yaml:"x_scale"`
	YScale   *float64    `yaml:"y_scale"`
	U        []float64   `yaml:"u"`
	V        []float64   `yaml:"v"`
}

func Load(r io.Reader) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return &doc, nil
}

// Build constructs the scene graph described by the document.
func (doc *Document) Build() (*model.WorldNode, error) {
	world := model.NewWorldNode()
	for _, property := range doc.World.Properties {
		world.Entity.AddOrUpdateProperty(property.Key, property.Value)
	}
	if !world.Entity.HasProperty(model.KeyClassname) {
		world.Entity.AddOrUpdateProperty(model.KeyClassname, model.ValueWorldspawnClassname)
	}

	defaultLayer := world.DefaultLayer()
	if err := applyLayerFlags(defaultLayer, doc.World.DefaultLayer); err != nil {
		return nil, err
	}
	if err := buildContents(defaultLayer, doc.World.Brushes, doc.World.Entities, doc.World.Groups); err != nil {
		return nil, err
	}

	for _, l := range doc.World.Layers {
		layer := model.NewLayerNode(l.Name)
		layer.SortIndex = l.SortIndex
		if err := applyLayerFlags(layer, l.LayerFlags); err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		if err := buildContents(layer, l.Brushes, l.Entities, l.Groups); err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		world.AddLayer(layer)
	}
	return world, nil
}

type childSink interface {
	AddChild(node model.Node)
}

func applyLayerFlags(layer *model.LayerNode, flags LayerFlags) error {
	if flags.Color != "" {
		var color model.Color
		n, err := fmt.Sscanf(flags.Color, "%f %f %f", &color.R, &color.G, &color.B)
		if err != nil || n != 3 {
			return fmt.Errorf("bad layer color %q", flags.Color)
		}
		layer.Color = &color
	}
	if flags.Locked {
		layer.LockState = model.LockLocked
	}
	layer.Hidden = flags.Hidden
	layer.OmitFromExport = flags.OmitFromExport
	return nil
}

func buildContents(sink childSink, brushes []Brush, entities []Entity, groups []Group) error {
	for i, b := range brushes {
		brush, err := buildBrush(b)
		if err != nil {
			return fmt.Errorf("brush %d: %w", i, err)
		}
		sink.AddChild(brush)
	}
	for i, e := range entities {
		node := model.NewEntityNode()
		for _, property := range e.Properties {
			node.Entity.AddOrUpdateProperty(property.Key, property.Value)
		}
		for j, b := range e.Brushes {
			brush, err := buildBrush(b)
			if err != nil {
				return fmt.Errorf("entity %d, brush %d: %w", i, j, err)
			}
			node.AddChild(brush)
		}
		sink.AddChild(node)
	}
	for _, g := range groups {
		group := model.NewGroupNode(g.Name)
		if g.LinkedGroupId != "" {
			id, err := uuid.Parse(g.LinkedGroupId)
			if err != nil {
				return fmt.Errorf("group %q: bad linked group id: %w", g.Name, err)
			}
			group.LinkedGroupId = &id
		}
		if err := buildContents(group, g.Brushes, g.Entities, g.Groups); err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
		sink.AddChild(group)
	}
	return nil
}

func buildBrush(b Brush) (*model.BrushNode, error) {
	brush := &model.BrushNode{}
	for i, f := range b.Faces {
		face, err := buildFace(f)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		brush.Faces = append(brush.Faces, face)
	}
	return brush, nil
}

func buildFace(f Face) (face model.BrushFace, err error) {
	if len(f.Points) != 3 {
		return face, fmt.Errorf("want 3 plane points, got %d", len(f.Points))
	}
	for i, p := range f.Points {
		face.Points[i], err = vec3(p)
		if err != nil {
			return face, fmt.Errorf("point %d: %w", i, err)
		}
	}
	if f.Texture == "" {
		return face, fmt.Errorf("missing texture")
	}
	face.Texture = f.Texture
	face.XOffset = f.XOffset
	face.YOffset = f.YOffset
	face.Rotation = f.Rotation
	face.XScale = scaleOrDefault(f.XScale)
	face.YScale = scaleOrDefault(f.YScale)
	if f.U != nil {
		if face.U, err = vec3(f.U); err != nil {
			return face, fmt.Errorf("u axis: %w", err)
		}
	}
	if f.V != nil {
		if face.V, err = vec3(f.V); err != nil {
			return face, fmt.Errorf("v axis: %w", err)
		}
	}
	return face, nil
}

func vec3(c []float64) (v model.Vec3, err error) {
	if len(c) != 3 {
		return v, fmt.Errorf("want 3 components, got %d", len(c))
	}
	copy(v[:], c)
	return v, nil
}

func scaleOrDefault(s *float64) float64 {
	if s == nil {
		return 1
	}
	return *s
}
