// Package headwear fits an externally authored prop mesh onto the
// reconstructed head using only the head's geometric extent.
package headwear

import (
	"errors"

	"github.com/Faultbox/headforge/internal/head"
	m "github.com/Faultbox/headforge/pkg/math"
)

// Headwear errors.
var (
	// ErrDegenerateProp is surfaced (never silently defaulted) when
	// the prop bounding box has a zero maximum dimension.
	ErrDegenerateProp = errors.New("prop bounding box has zero extent")
	// ErrEmptyProp marks a prop with no geometry at all.
	ErrEmptyProp = errors.New("prop contains no meshes")
)

// SubMesh is one triangle mesh of the prop asset.
type SubMesh struct {
	Positions []m.Vec3
	Normals   []m.Vec3
	UVs       []m.Vec2
	Indices   []uint32
}

// Prop is an already-parsed headwear asset with its own local
// bounding box.
type Prop struct {
	Name   string
	Meshes []SubMesh
	Bounds head.Bounds
}

// ComputePropBounds reduces all sub-mesh vertices to one local box.
func ComputePropBounds(meshes []SubMesh) head.Bounds {
	b := head.Bounds{
		Min: m.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: m.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, sm := range meshes {
		for _, p := range sm.Positions {
			b.Min = b.Min.Min(p)
			b.Max = b.Max.Max(p)
		}
	}
	return b
}

// NewProp wraps sub-meshes into a prop with computed bounds.
func NewProp(name string, meshes []SubMesh) (*Prop, error) {
	total := 0
	for _, sm := range meshes {
		total += len(sm.Positions)
	}
	if total == 0 {
		return nil, ErrEmptyProp
	}
	return &Prop{
		Name:   name,
		Meshes: meshes,
		Bounds: ComputePropBounds(meshes),
	}, nil
}
