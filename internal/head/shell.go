package head

import (
	"github.com/Faultbox/headforge/internal/landmark"
	"github.com/Faultbox/headforge/internal/topology"
	m "github.com/Faultbox/headforge/pkg/math"
)

// ShellParams are the back-shell shape tunables.
type ShellParams struct {
	DepthFactor       float32
	TaperMin          float32
	TaperRange        float32
	Ring1Taper        float32
	Ring2Taper        float32
	ForeheadBulgeFrac float32
	DomeHeightFrac    float32
}

// DefaultShellParams returns the stock head profile.
func DefaultShellParams() ShellParams {
	return ShellParams{
		DepthFactor:       0.5,
		TaperMin:          0.94,
		TaperRange:        0.04,
		Ring1Taper:        0.97,
		Ring2Taper:        0.96,
		ForeheadBulgeFrac: 0.1,
		DomeHeightFrac:    0.18,
	}
}

// Taper returns the back-ring taper at normalized height t in [0, 1]
// (chin to forehead). Monotonically non-decreasing, bounded by
// [TaperMin, TaperMin+TaperRange].
func (p ShellParams) Taper(t float32) float32 {
	return p.TaperMin + p.TaperRange*m.Clamp(t, 0, 1)
}

// epsHeight guards the height ratio against a degenerate flat box.
const epsHeight = 1e-5

// BuildBackShell extrudes the face-oval perimeter into a tapering back
// shell closed by a dome (material group 1). For an N-vertex oval it
// emits 4N+1 vertices and 7N triangles; UVs are degenerate (0,0) since
// the shell is flat-colored.
//
// Each oval vertex spawns four rings: the original front position and
// three copies pushed behind minZ at a third, two thirds, and the full
// head depth, each pulled toward the bounding-box center by its taper
// and lifted by a forehead bulge proportional to normalized height.
func BuildBackShell(set landmark.Set, bounds Bounds, params ShellParams) *Buffer {
	oval := topology.FaceOval[:]
	n := len(oval)

	depth := bounds.Width() * params.DepthFactor
	center := bounds.Center()
	bulge := depth * params.ForeheadBulgeFrac
	height := bounds.Height()
	if height < epsHeight {
		height = epsHeight
	}

	buf := &Buffer{
		Positions: make([]m.Vec3, 0, 4*n+1),
		UVs:       make([]m.Vec2, 4*n+1),
		Indices:   make([]uint32, 0, 7*n*3),
	}

	// Vertex layout: four consecutive rings per oval vertex, apex last.
	for _, li := range oval {
		p := set[li].Vec3()
		t := m.Clamp((p.Y-bounds.Min.Y)/height, 0, 1)

		ring := func(taper, z float32) m.Vec3 {
			return m.Vec3{
				X: center.X + (p.X-center.X)*taper,
				Y: center.Y + (p.Y-center.Y)*taper + bulge*t,
				Z: z,
			}
		}

		buf.Positions = append(buf.Positions,
			p,
			ring(params.Ring1Taper+0.02*t, bounds.Min.Z-0.33*depth),
			ring(params.Ring2Taper+0.02*t, bounds.Min.Z-0.66*depth),
			ring(params.Taper(t), bounds.Min.Z-depth),
		)
	}

	apex := uint32(4 * n)
	buf.Positions = append(buf.Positions, m.Vec3{
		X: center.X,
		Y: center.Y + 0.5*bulge,
		Z: bounds.Min.Z - depth - depth*params.DomeHeightFrac,
	})

	// Side wall: two triangles per ring-to-ring quad, three quads per
	// oval edge. The oval loop direction relative to the outward
	// normal flips between the left and right halves of the head, so
	// winding is chosen per edge from the edge midpoint.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi := set[oval[i]].Vec3()
		pj := set[oval[j]].Vec3()
		rightHalf := (pi.X+pj.X)*0.5 >= center.X

		for r := 0; r < 3; r++ {
			a0 := uint32(i*4 + r)
			a1 := uint32(i*4 + r + 1)
			b0 := uint32(j*4 + r)
			b1 := uint32(j*4 + r + 1)

			if rightHalf {
				buf.Indices = append(buf.Indices, a0, b0, a1, b0, b1, a1)
			} else {
				buf.Indices = append(buf.Indices, a0, a1, b0, b0, a1, b1)
			}
		}
	}

	// Dome fan closing the back.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		buf.Indices = append(buf.Indices, apex, uint32(j*4+3), uint32(i*4+3))
	}

	buf.Groups = []Group{{
		Material:   MaterialShell,
		StartIndex: 0,
		IndexCount: int32(len(buf.Indices)),
	}}
	return buf
}
