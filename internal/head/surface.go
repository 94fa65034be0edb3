package head

import (
	"github.com/Faultbox/headforge/internal/landmark"
	"github.com/Faultbox/headforge/internal/topology"
	m "github.com/Faultbox/headforge/pkg/math"
)

// BuildFaceSurface triangulates the landmark set into the front face
// surface (material group 0).
//
// Positions take the landmark coordinates directly. UVs undo the
// detector's X mirror and Y flip so the UV origin matches standard
// raster bottom-left: u = -x + 0.5, v = y + 0.5.
//
// noseShrink, when in (0, 1), pulls the nose landmark subset toward
// its own centroid by that factor; UVs are untouched so the texture
// still maps to the original projection. Zero or 1 disables it.
func BuildFaceSurface(set landmark.Set, noseShrink float32) *Buffer {
	n := len(set)
	buf := &Buffer{
		Positions: make([]m.Vec3, n),
		UVs:       make([]m.Vec2, n),
		Indices:   make([]uint32, 0, len(topology.Tessellation)*3),
	}

	for i, p := range set {
		buf.Positions[i] = p.Vec3()
		buf.UVs[i] = m.Vec2{X: -p.X + 0.5, Y: p.Y + 0.5}
	}

	if noseShrink > 0 && noseShrink < 1 {
		shrinkNose(buf.Positions, noseShrink)
	}

	// The tessellation is authored for the pre-mirror orientation; the
	// X mirror baked into the input reverses triangle orientation, so
	// swap the 2nd and 3rd index to keep normals pointing outward.
	for _, tri := range topology.Tessellation {
		buf.Indices = append(buf.Indices, uint32(tri[0]), uint32(tri[2]), uint32(tri[1]))
	}

	buf.Groups = []Group{{
		Material:   MaterialFace,
		StartIndex: 0,
		IndexCount: int32(len(buf.Indices)),
	}}
	return buf
}

// shrinkNose moves the nose subset toward the centroid of the already
// placed nose positions.
func shrinkNose(positions []m.Vec3, factor float32) {
	var centroid m.Vec3
	for _, idx := range topology.NoseIndices {
		centroid = centroid.Add(positions[idx])
	}
	centroid = centroid.Scale(1 / float32(len(topology.NoseIndices)))

	for _, idx := range topology.NoseIndices {
		positions[idx] = centroid.Add(positions[idx].Sub(centroid).Scale(factor))
	}
}
