package headwear

import (
	gomath "math"

	m "github.com/Faultbox/headforge/pkg/math"
)

// DomeProp builds a faceted unit hemisphere opening downward, usable
// as a stand-in helmet when no authored asset is available. segments
// is the radial resolution, rings the stack count from rim to pole.
func DomeProp(segments, rings int) *Prop {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var positions []m.Vec3
	for r := 0; r < rings; r++ {
		// Polar angle from the rim (equator) up to just below the pole.
		phi := float64(r) / float64(rings) * gomath.Pi / 2
		y := float32(gomath.Sin(phi))
		rad := float32(gomath.Cos(phi))
		for s := 0; s < segments; s++ {
			theta := float64(s) / float64(segments) * 2 * gomath.Pi
			positions = append(positions, m.Vec3{
				X: rad * float32(gomath.Cos(theta)),
				Y: y,
				Z: rad * float32(gomath.Sin(theta)),
			})
		}
	}
	pole := uint32(len(positions))
	positions = append(positions, m.Vec3{Y: 1})

	// On a unit sphere the normal equals the position.
	normals := append([]m.Vec3(nil), positions...)

	var indices []uint32
	for r := 0; r < rings-1; r++ {
		for s := 0; s < segments; s++ {
			a0 := uint32(r*segments + s)
			a1 := uint32(r*segments + (s+1)%segments)
			b0 := a0 + uint32(segments)
			b1 := a1 + uint32(segments)
			indices = append(indices, a0, b0, a1, a1, b0, b1)
		}
	}
	top := (rings - 1) * segments
	for s := 0; s < segments; s++ {
		a := uint32(top + s)
		b := uint32(top + (s+1)%segments)
		indices = append(indices, a, pole, b)
	}

	// Cannot fail: the mesh always has vertices.
	prop, _ := NewProp("dome", []SubMesh{{
		Positions: positions,
		Normals:   normals,
		Indices:   indices,
	}})
	return prop
}
