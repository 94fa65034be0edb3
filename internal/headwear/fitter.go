package headwear

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/headforge/internal/head"
	m "github.com/Faultbox/headforge/pkg/math"
)

// FitParams control prop scaling, placement and appearance. The
// rotation is a per-asset calibration constant aligning the asset's
// authored front with the head's forward axis; it cannot be derived
// from geometry and must be re-tuned when the asset changes.
type FitParams struct {
	ScaleFactor    float32
	OffsetUpFrac   float32
	OffsetBackFrac float32
	RotationDeg    [3]float32
	Roughness      float32
	Metalness      float32
	// Hue in [0,360) drives the shared material color.
	Hue float32
}

// DefaultFitParams returns the stock helmet calibration.
func DefaultFitParams() FitParams {
	return FitParams{
		ScaleFactor:    1.1,
		OffsetUpFrac:   0.47,
		OffsetBackFrac: 0.6,
		RotationDeg:    [3]float32{-12, 0, 180},
		Roughness:      0.55,
		Metalness:      0.25,
		Hue:            210,
	}
}

// Material is the single shared appearance applied to every sub-mesh.
type Material struct {
	Color     [3]float32
	Roughness float32
	Metalness float32
}

// Fitted is a placed prop: the source meshes plus the transform that
// lands them on the head, and the shared material.
type Fitted struct {
	Prop     *Prop
	Scale    float32
	Rotation [3]float32
	Offset   m.Vec3
	Material Material
	// Bounds is the world-space box of the transformed prop.
	Bounds head.Bounds
}

// Lightness interpolation bounds for the hue-derived color.
const (
	colorSaturation = 0.35
	lightnessLo     = 0.45
	lightnessHi     = 0.65
)

// Fit scales, rotates, positions and colors the prop relative to the
// head extent. Only the head bounding box is consulted; no rigging.
func Fit(prop *Prop, headBounds head.Bounds, params FitParams) (*Fitted, error) {
	headRadius := HeadRadius(headBounds)

	propRadius := prop.Bounds.MaxDimension() / 2
	if propRadius <= 0 {
		return nil, ErrDegenerateProp
	}

	scale := headRadius * params.ScaleFactor / propRadius

	rot := rotationMatrix(params.RotationDeg)
	scaled := rot.Mul(m.UniformScale(scale))

	// Exact post-rotation box from the transformed vertices; the
	// rotated corners of the original box would only bound it.
	rotated := transformedBounds(prop, scaled)

	target := headBounds.Center().Add(m.Vec3{
		Y: headRadius * params.OffsetUpFrac,
		Z: -headRadius * params.OffsetBackFrac,
	})
	offset := target.Sub(rotated.Center())

	return &Fitted{
		Prop:     prop,
		Scale:    scale,
		Rotation: params.RotationDeg,
		Offset:   offset,
		Material: Material{
			Color:     hueColor(params.Hue),
			Roughness: params.Roughness,
			Metalness: params.Metalness,
		},
		Bounds: head.Bounds{
			Min: rotated.Min.Add(offset),
			Max: rotated.Max.Add(offset),
		},
	}, nil
}

// HeadRadius is half the length of (width, height, width/2): head
// depth is approximated as half the width since the landmark z range
// only covers the face relief.
func HeadRadius(b head.Bounds) float32 {
	w, h := b.Width(), b.Height()
	return m.Vec3{X: w, Y: h, Z: w * 0.5}.Length() / 2
}

// Transform returns the full prop placement matrix.
func (f *Fitted) Transform() m.Mat4 {
	return m.Translate(f.Offset.X, f.Offset.Y, f.Offset.Z).
		Mul(rotationMatrix(f.Rotation)).
		Mul(m.UniformScale(f.Scale))
}

func rotationMatrix(deg [3]float32) m.Mat4 {
	const degToRad = gomath.Pi / 180
	return m.RotateEuler(deg[0]*degToRad, deg[1]*degToRad, deg[2]*degToRad)
}

func transformedBounds(prop *Prop, mat m.Mat4) head.Bounds {
	b := head.Bounds{
		Min: m.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: m.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, sm := range prop.Meshes {
		for _, p := range sm.Positions {
			v := mat.TransformVec3(p)
			b.Min = b.Min.Min(v)
			b.Max = b.Max.Max(v)
		}
	}
	return b
}

// hueColor derives the shared material color from a hue: fixed
// saturation, lightness interpolated across the hue circle.
func hueColor(hue float32) [3]float32 {
	h := float64(hue)
	h = gomath.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	l := lightnessLo + (lightnessHi-lightnessLo)*(h/360)
	c := colorful.Hsl(h, colorSaturation, l).Clamped()
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}
