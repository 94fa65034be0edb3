// Package landmark defines the detector-facing landmark input contract.
//
// Landmarks arrive in a fixed canonical space: x and y roughly in
// [-0.5, 0.5], centered and mirrored so subject-right is negative x;
// z roughly in [0, 0.15] with positive z toward the viewer. The sign
// convention is an input contract of the upstream detector, not
// something re-derived here.
package landmark

import (
	"errors"
	"fmt"

	"github.com/Faultbox/headforge/internal/topology"
	m "github.com/Faultbox/headforge/pkg/math"
)

// Landmark set errors.
var (
	ErrBadCount  = errors.New("landmark set must contain exactly 468 points")
	ErrNotFinite = errors.New("landmark coordinate is not finite")
)

// Point is one detected facial key point in canonical space.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec3 returns the point as a math vector.
func (p Point) Vec3() m.Vec3 {
	return m.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Set is an ordered landmark list. Index position is semantically
// fixed: index N denotes the same anatomical point across all inputs.
type Set []Point

// Validate checks the 468-length and finiteness invariants. It must
// pass before any geometry work begins; nothing is partially built on
// malformed input.
func (s Set) Validate() error {
	if len(s) != topology.NumLandmarks {
		return fmt.Errorf("%w: got %d", ErrBadCount, len(s))
	}
	for i, p := range s {
		if !p.Vec3().IsFinite() {
			return fmt.Errorf("%w: index %d = (%g, %g, %g)", ErrNotFinite, i, p.X, p.Y, p.Z)
		}
	}
	return nil
}

// SyntheticSet returns a deterministic symmetric 468-point set shaped
// like a disk of the given radius, matching the canonical tessellation
// layout. Used by tests and the demo build.
func SyntheticSet(radius float32) Set {
	pts := topology.DiskLayout(radius)
	set := make(Set, topology.NumLandmarks)
	for i, p := range pts {
		set[i] = Point{X: p[0], Y: p[1], Z: p[2]}
	}
	return set
}
