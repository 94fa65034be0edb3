// Package pipeline assembles the full head reconstruction: bounding
// box, face surface, back shell, merge, skin tone, face texture, and
// headwear fitting, composed into one centered assembly.
package pipeline

import (
	"image"

	"github.com/Faultbox/headforge/internal/head"
	"github.com/Faultbox/headforge/internal/headwear"
	"github.com/Faultbox/headforge/internal/skin"
	m "github.com/Faultbox/headforge/pkg/math"
)

// Assembly is the finished build: a head node and a headwear node
// under a root offset that centers the head mesh at the local origin.
// It can be attached to any parent transform without further offset
// math.
type Assembly struct {
	// Head is the merged two-material head mesh in landmark space.
	Head *head.Mesh
	// Texture is the face-surface diffuse texture.
	Texture *image.NRGBA
	// SkinTone also colors the flat shell material.
	SkinTone skin.Tone
	// Headwear is the fitted prop node.
	Headwear *headwear.Fitted
	// RootOffset is the root translation (-centroid of the head mesh).
	RootOffset m.Vec3
	// Bounds is the landmark bounding box the build derived from.
	Bounds head.Bounds
}

// Centroid returns the mean of the head-mesh vertex positions.
func (a *Assembly) Centroid() m.Vec3 {
	return a.RootOffset.Scale(-1)
}
