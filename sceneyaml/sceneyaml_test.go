package sceneyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapwriter/mapio"
	"mapwriter/model"
)

const sampleScene = `
world:
  properties:
    - {key: classname, value: worldspawn}
    - {key: message, value: test map}
  default_layer:
    color: 0.5 0.5 0.5
  brushes:
    - faces:
        - points: [[0, 0, 0], [0, 1, 0], [1, 0, 0]]
          texture: rock4_1
  layers:
    - name: Detail
      sort_index: 2
      locked: true
      entities:
        - properties:
            - {key: classname, value: light}
            - {key: light, value: "300"}
      groups:
        - name: Crates
          linked_group_id: f81d4fae-7dec-11d0-a765-00a0c91e6bf6
          brushes:
            - faces:
                - points: [[0, 0, 0], [0, 1, 0], [1, 0, 0]]
                  texture: crate05
                  x_offset: 16
                  u: [1, 0, 0]
                  v: [0, -1, 0]
`

func TestLoadAndBuild(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)

	world, err := doc.Build()
	require.NoError(t, err)

	message, found := world.Entity.Property("message")
	assert.True(t, found)
	assert.Equal(t, "test map", message)

	defaultLayer := world.DefaultLayer()
	require.NotNil(t, defaultLayer.Color)
	assert.Equal(t, model.Color{R: 0.5, G: 0.5, B: 0.5}, *defaultLayer.Color)
	assert.Len(t, defaultLayer.Children(), 1)

	layers := world.CustomLayers()
	require.Len(t, layers, 1)
	detail := layers[0]
	assert.Equal(t, "Detail", detail.Name)
	assert.Equal(t, model.LockLocked, detail.LockState)
	require.NotNil(t, detail.SortIndex)
	assert.Equal(t, 2, *detail.SortIndex)

	require.Len(t, detail.Children(), 2)
	light, ok := detail.Children()[0].(*model.EntityNode)
	require.True(t, ok)
	assert.Equal(t, []model.EntityProperty{
		{Key: "classname", Value: "light"},
		{Key: "light", Value: "300"},
	}, light.Entity.Properties())

	crates, ok := detail.Children()[1].(*model.GroupNode)
	require.True(t, ok)
	assert.Equal(t, "Crates", crates.Name)
	require.NotNil(t, crates.LinkedGroupId)
	assert.Equal(t, "f81d4fae-7dec-11d0-a765-00a0c91e6bf6", crates.LinkedGroupId.String())

	brush, ok := crates.Children()[0].(*model.BrushNode)
	require.True(t, ok)
	require.Len(t, brush.Faces, 1)
	face := brush.Faces[0]
	assert.Equal(t, "crate05", face.Texture)
	assert.Equal(t, 16.0, face.XOffset)
	// Omitted scales default to 1.
	assert.Equal(t, 1.0, face.XScale)
	assert.Equal(t, model.Vec3{0, -1, 0}, face.V)
}

func TestBuildAddsWorldspawnClassname(t *testing.T) {
	doc, err := Load(strings.NewReader("world: {}\n"))
	require.NoError(t, err)

	world, err := doc.Build()
	require.NoError(t, err)

	classname, found := world.Entity.Property(model.KeyClassname)
	assert.True(t, found)
	assert.Equal(t, model.ValueWorldspawnClassname, classname)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name  string
		scene string
		want  string
	}{
		{
			name: "bad color",
			scene: `
world:
  default_layer:
    color: reddish
`,
			want: "bad layer color",
		},
		{
			name: "bad point count",
			scene: `
world:
  brushes:
    - faces:
        - points: [[0, 0, 0], [0, 1, 0]]
          texture: rock4_1
`,
			want: "3 plane points",
		},
		{
			name: "missing texture",
			scene: `
world:
  brushes:
    - faces:
        - points: [[0, 0, 0], [0, 1, 0], [1, 0, 0]]
`,
			want: "missing texture",
		},
		{
			name: "bad linked group id",
			scene: `
world:
  groups:
    - name: Crates
      linked_group_id: not-a-uuid
`,
			want: "linked group id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Load(strings.NewReader(tc.scene))
			require.NoError(t, err)
			_, err = doc.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("world:\n  bogus: 1\n"))
	assert.Error(t, err)
}

func TestSceneToMapText(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)
	world, err := doc.Build()
	require.NoError(t, err)

	var out strings.Builder
	writer := mapio.NewNodeWriter(world, mapio.NewValve220Serializer(&out))
	require.NoError(t, writer.WriteMap())

	text := out.String()
	assert.Contains(t, text, `"classname" "worldspawn"`)
	assert.Contains(t, text, `"_ed_layer_color" "0.5 0.5 0.5"`)
	assert.Contains(t, text, "( 0 0 0 ) ( 0 1 0 ) ( 1 0 0 ) crate05 [ 1 0 0 16 ] [ 0 -1 0 0 ] 0 1 1")
	assert.Contains(t, text, `"_ed_linked_group_id" "f81d4fae-7dec-11d0-a765-00a0c91e6bf6"`)
}
