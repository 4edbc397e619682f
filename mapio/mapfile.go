package mapio

import (
	"bufio"
	"fmt"
	"io"

	"mapwriter/model"
)

// MapSerializer is the format backend: it owns all actual text
// production. NodeSerializer guarantees begin/end pairing and delivers
// hooks in document order; a backend needs no knowledge of the scene
// graph beyond the node handed to it.
type MapSerializer interface {
	BeginFile(rootNodes []model.Node) error
	EndFile() error
	BeginEntity(node model.Node) error
	EndEntity(node model.Node) error
	EntityProperty(property model.EntityProperty) error
	Brush(brush *model.BrushNode) error
	BrushFace(face *model.BrushFace) error
}

// faceFormat renders one face line; it is the only point where the
// standard and Valve 220 formats differ.
type faceFormat interface {
	writeFace(w io.Writer, face *model.BrushFace) error
}

type fileSerializer struct {
	w     *bufio.Writer
	faces faceFormat

	entityNo int
	brushNo  int
}

// NewStandardSerializer writes the legacy map format, where texture
// alignment is just offsets, rotation and scale.
func NewStandardSerializer(w io.Writer) MapSerializer {
	return &fileSerializer{w: bufio.NewWriter(w), faces: standardFaceFormat{}}
}

// NewValve220Serializer writes the Valve 220 map format with explicit
// texture axes per face.
func NewValve220Serializer(w io.Writer) MapSerializer {
	return &fileSerializer{w: bufio.NewWriter(w), faces: valve220FaceFormat{}}
}

func (s *fileSerializer) BeginFile(rootNodes []model.Node) error {
	s.entityNo = 0
	s.brushNo = 0
	return nil
}

func (s *fileSerializer) EndFile() error {
	return s.w.Flush()
}

func (s *fileSerializer) BeginEntity(node model.Node) error {
	s.brushNo = 0
	_, err := fmt.Fprintf(s.w, "// entity %d\n{\n", s.entityNo)
	return err
}

func (s *fileSerializer) EndEntity(node model.Node) error {
	s.entityNo++
	_, err := s.w.WriteString("}\n")
	return err
}

func (s *fileSerializer) EntityProperty(property model.EntityProperty) error {
	_, err := fmt.Fprintf(s.w, "\"%s\" \"%s\"\n",
		EscapeEntityProperties(property.Key),
		EscapeEntityProperties(property.Value))
	return err
}

func (s *fileSerializer) Brush(brush *model.BrushNode) error {
	if _, err := fmt.Fprintf(s.w, "// brush %d\n{\n", s.brushNo); err != nil {
		return err
	}
	s.brushNo++
	for i := range brush.Faces {
		if err := s.BrushFace(&brush.Faces[i]); err != nil {
			return err
		}
	}
	_, err := s.w.WriteString("}\n")
	return err
}

func (s *fileSerializer) BrushFace(face *model.BrushFace) error {
	return s.faces.writeFace(s.w, face)
}

type standardFaceFormat struct{}

func (standardFaceFormat) writeFace(w io.Writer, face *model.BrushFace) error {
	_, err := fmt.Fprintf(w, "( %v ) ( %v ) ( %v ) %s %s %s %s %s %s\n",
		face.Points[0], face.Points[1], face.Points[2],
		face.Texture,
		model.Ftos(face.XOffset), model.Ftos(face.YOffset),
		model.Ftos(face.Rotation),
		model.Ftos(face.XScale), model.Ftos(face.YScale))
	return err
}

type valve220FaceFormat struct{}

func (valve220FaceFormat) writeFace(w io.Writer, face *model.BrushFace) error {
	_, err := fmt.Fprintf(w, "( %v ) ( %v ) ( %v ) %s [ %v %s ] [ %v %s ] %s %s %s\n",
		face.Points[0], face.Points[1], face.Points[2],
		face.Texture,
		face.U, model.Ftos(face.XOffset),
		face.V, model.Ftos(face.YOffset),
		model.Ftos(face.Rotation),
		model.Ftos(face.XScale), model.Ftos(face.YScale))
	return err
}
