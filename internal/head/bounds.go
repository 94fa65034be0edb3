package head

import (
	"github.com/Faultbox/headforge/internal/landmark"
	m "github.com/Faultbox/headforge/pkg/math"
)

// Bounds is the axis-aligned extent of a point set.
type Bounds struct {
	Min m.Vec3
	Max m.Vec3
}

// ComputeBounds reduces the landmark set to its axis-aligned extent.
// The caller guarantees a validated, non-empty set.
func ComputeBounds(set landmark.Set) Bounds {
	b := Bounds{
		Min: m.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: m.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, p := range set {
		v := p.Vec3()
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// Center returns the midpoint of the box per axis.
func (b Bounds) Center() m.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Width returns the X extent.
func (b Bounds) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the Y extent.
func (b Bounds) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Depth returns the Z extent.
func (b Bounds) Depth() float32 {
	return b.Max.Z - b.Min.Z
}

// MaxDimension returns the largest extent across the three axes.
func (b Bounds) MaxDimension() float32 {
	d := b.Max.Sub(b.Min)
	return max(d.X, d.Y, d.Z)
}
