// Package topology holds the canonical face-landmark topology constants.
//
// The landmark detector emits a fixed-length list of 468 points whose
// index positions are anatomically stable: index N always denotes the
// same point on every face. Everything in this package is derived from
// that canonical ordering and is process-wide read-only data.
package topology

import "math"

// NumLandmarks is the fixed canonical landmark count.
const NumLandmarks = 468

// FaceOval is the ordered ring of landmark indices tracing the outer
// face boundary, temples over the forehead, down the jaw to the chin
// and back. The loop is closed: the last index connects to the first.
var FaceOval = [36]int{
	10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
	397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
	172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
}

// NoseIndices is the landmark subset moved by the nose-shrink pass.
var NoseIndices = []int{
	1, 2, 4, 5, 6, 19, 44, 45, 51, 94, 97, 98, 115,
	168, 195, 197, 220, 248, 274, 275, 281, 326, 327, 344, 440,
}

// Skin-tone anchor landmarks.
const (
	AnchorForehead   = 151
	AnchorLeftCheek  = 50
	AnchorRightCheek = 280
)

// SkinAnchors lists the default skin-tone sample anchors.
var SkinAnchors = []int{AnchorForehead, AnchorLeftCheek, AnchorRightCheek}

// ringSizes is the interior concentric-ring layout the tessellation
// table was generated from: one center vertex, these rings, then the
// FaceOval indices as the 36-vertex outer boundary ring. See
// testdata/generate_tessellation.go.
var ringSizes = []int{12, 20, 28, 36, 44, 52, 58, 60, 56, 56}

// unusedLandmarks are the indices the tessellation leaves unreferenced.
// 880 triangles over a 36-vertex boundary fix the referenced vertex
// count at 459, so nine of the 468 landmarks carry positions and UVs
// but no triangles.
var unusedLandmarks = []int{3, 30, 62, 76, 184, 191, 266, 306, 414}

// interiorOrder returns the landmark indices outside FaceOval and
// unusedLandmarks in ascending order: the slot assignment the
// tessellation generator uses, center first, then rings inward to
// outward.
func interiorOrder() []int {
	skip := make(map[int]bool, len(FaceOval)+len(unusedLandmarks))
	for _, idx := range FaceOval {
		skip[idx] = true
	}
	for _, idx := range unusedLandmarks {
		skip[idx] = true
	}

	order := make([]int, 0, NumLandmarks-len(skip))
	for idx := 0; idx < NumLandmarks; idx++ {
		if !skip[idx] {
			order = append(order, idx)
		}
	}
	return order
}

// DiskLayout returns a deterministic 468-point layout matching the
// tessellation's authored ring structure: a symmetric disk of the
// given radius in the XY plane with a gentle Z dome toward the viewer,
// the FaceOval indices evenly spaced on the outer boundary circle.
// It is the canonical synthetic fixture for tests and demos.
func DiskLayout(radius float32) [NumLandmarks][3]float32 {
	var pts [NumLandmarks][3]float32

	const zPeak = 0.15
	place := func(idx int, r, theta float64) {
		pts[idx] = [3]float32{
			radius * float32(r*math.Cos(theta)),
			radius * float32(r*math.Sin(theta)),
			zPeak * float32(1-r*r),
		}
	}

	totalRings := len(ringSizes) + 1

	interior := interiorOrder()
	place(interior[0], 0, 0)
	k := 1
	for ring, n := range ringSizes {
		r := float64(ring+1) / float64(totalRings)
		for i := 0; i < n; i++ {
			place(interior[k], r, 2*math.Pi*float64(i)/float64(n))
			k++
		}
	}

	for i, idx := range FaceOval {
		place(idx, 1, 2*math.Pi*float64(i)/float64(len(FaceOval)))
	}

	// Unreferenced landmarks still need finite positions; park them
	// between the last interior ring and the boundary.
	for i, idx := range unusedLandmarks {
		place(idx, 0.97, 2*math.Pi*(float64(i)+0.5)/float64(len(unusedLandmarks)))
	}
	return pts
}
