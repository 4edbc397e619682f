package model

import (
	"fmt"
	"strconv"
)

type Vec3 [3]float64

func (v Vec3) String() string {
	return fmt.Sprintf("%s %s %s", Ftos(v[0]), Ftos(v[1]), Ftos(v[2]))
}

// Ftos formats a coordinate the way map files expect: shortest form that
// round-trips.
func Ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// BrushFace is one plane of a brush. Points are three non-collinear points
// on the plane, wound so the normal faces outward. U/V axes are only
// meaningful for the Valve 220 format; the standard format derives axes
// from the plane normal and only writes the offsets.
type BrushFace struct {
	Points  [3]Vec3
	Texture string

	XOffset  float64
	YOffset  float64
	Rotation float64
	XScale   float64
	YScale   float64

	U Vec3
	V Vec3
}
