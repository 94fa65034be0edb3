// Package head builds the closed head mesh from a landmark set: the
// triangulated front face surface, the extruded back shell, and the
// merged two-material result.
package head

import (
	m "github.com/Faultbox/headforge/pkg/math"
)

// Material identifies the surface appearance of a triangle range.
type Material int

const (
	// MaterialFace is the photo-textured front surface.
	MaterialFace Material = iota
	// MaterialShell is the flat skin-colored back shell.
	MaterialShell
)

// Group tags a contiguous index range with its material.
type Group struct {
	Material   Material
	StartIndex int32
	IndexCount int32
}

// Buffer is an intermediate geometry buffer produced by one builder.
// UVs are one-to-one with positions; indices form triangles.
type Buffer struct {
	Positions []m.Vec3
	UVs       []m.Vec2
	Indices   []uint32
	Groups    []Group
}

// Mesh is the merged head geometry with recomputed vertex normals.
type Mesh struct {
	Positions []m.Vec3
	Normals   []m.Vec3
	UVs       []m.Vec2
	Indices   []uint32
	Groups    []Group
}

// TriangleCount returns the number of triangles in the buffer.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// TriangleCount returns the number of triangles in the mesh.
func (mh *Mesh) TriangleCount() int {
	return len(mh.Indices) / 3
}
