package head

import (
	m "github.com/Faultbox/headforge/pkg/math"
)

// Merge concatenates the face and shell buffers into one mesh: shell
// indices are re-offset past the face vertices, material ranges are
// re-tagged, and vertex normals are recomputed.
//
// Normal convention: each vertex normal is the normalized sum of the
// raw cross products of its incident triangles, i.e. an area-weighted
// average. The convention is fixed so repeated runs are bit-identical.
func Merge(face, shell *Buffer) *Mesh {
	vertCount := len(face.Positions) + len(shell.Positions)
	mesh := &Mesh{
		Positions: make([]m.Vec3, 0, vertCount),
		UVs:       make([]m.Vec2, 0, vertCount),
		Indices:   make([]uint32, 0, len(face.Indices)+len(shell.Indices)),
	}

	mesh.Positions = append(mesh.Positions, face.Positions...)
	mesh.Positions = append(mesh.Positions, shell.Positions...)
	mesh.UVs = append(mesh.UVs, face.UVs...)
	mesh.UVs = append(mesh.UVs, shell.UVs...)

	mesh.Indices = append(mesh.Indices, face.Indices...)
	offset := uint32(len(face.Positions))
	for _, idx := range shell.Indices {
		mesh.Indices = append(mesh.Indices, idx+offset)
	}

	for _, g := range face.Groups {
		mesh.Groups = append(mesh.Groups, g)
	}
	indexOffset := int32(len(face.Indices))
	for _, g := range shell.Groups {
		mesh.Groups = append(mesh.Groups, Group{
			Material:   g.Material,
			StartIndex: g.StartIndex + indexOffset,
			IndexCount: g.IndexCount,
		})
	}

	mesh.Normals = computeNormals(mesh.Positions, mesh.Indices)
	return mesh
}

// computeNormals accumulates raw face cross products per vertex and
// normalizes the sums.
func computeNormals(positions []m.Vec3, indices []uint32) []m.Vec3 {
	normals := make([]m.Vec3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		e1 := positions[i1].Sub(positions[i0])
		e2 := positions[i2].Sub(positions[i0])
		face := e1.Cross(e2)

		normals[i0] = normals[i0].Add(face)
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
	}

	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
