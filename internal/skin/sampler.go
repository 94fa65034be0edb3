// Package skin estimates an average skin color from photo patches
// sampled at fixed anchor landmarks.
package skin

import (
	"image"

	"github.com/Faultbox/headforge/internal/landmark"
	"github.com/Faultbox/headforge/internal/topology"
)

// Tone is a normalized RGB triple in [0,1]^3.
type Tone struct {
	R, G, B float32
}

// Fallback is returned when no anchor patch can be sampled at all
// (zero-size image, every anchor out of bounds). A neutral light skin
// tone keeps downstream materials usable.
var Fallback = Tone{R: 0.80, G: 0.62, B: 0.50}

// Params control patch sampling.
type Params struct {
	// PatchSize is the square patch edge in pixels.
	PatchSize int
	// Anchors are the landmark indices to sample. Empty selects the
	// built-in forehead and cheek anchors.
	Anchors []int
}

// DefaultParams returns the stock sampling setup.
func DefaultParams() Params {
	return Params{PatchSize: 24}
}

// Sample averages the photo color in patches centered at the anchor
// landmarks. Anchors whose patch falls outside the image are skipped;
// if every anchor fails the fixed Fallback tone is returned. Sample
// never fails.
func Sample(img image.Image, set landmark.Set, params Params) Tone {
	if img == nil {
		return Fallback
	}
	anchors := params.Anchors
	if len(anchors) == 0 {
		anchors = topology.SkinAnchors
	}
	patch := params.PatchSize
	if patch <= 0 {
		patch = DefaultParams().PatchSize
	}

	var sum Tone
	samples := 0
	for _, idx := range anchors {
		if idx < 0 || idx >= len(set) {
			continue
		}
		tone, ok := samplePatch(img, set[idx], patch)
		if !ok {
			continue
		}
		sum.R += tone.R
		sum.G += tone.G
		sum.B += tone.B
		samples++
	}

	if samples == 0 {
		return Fallback
	}
	inv := 1 / float32(samples)
	return Tone{R: sum.R * inv, G: sum.G * inv, B: sum.B * inv}
}

// samplePatch averages one patch centered at the landmark's image
// projection, clipped to the image bounds.
func samplePatch(img image.Image, p landmark.Point, patch int) (Tone, bool) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return Tone{}, false
	}

	// Landmark plane to pixel coordinates: undo the X mirror, flip Y
	// to raster rows.
	cx := bounds.Min.X + int(float32(w)*(-p.X+0.5))
	cy := bounds.Min.Y + int(float32(h)*(1-(p.Y+0.5)))

	half := patch / 2
	region := image.Rect(cx-half, cy-half, cx+half, cy+half).Intersect(bounds)
	if region.Empty() {
		return Tone{}, false
	}

	var r, g, b uint64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
		}
	}

	n := uint64(region.Dx() * region.Dy())
	const maxChan = 0xffff
	return Tone{
		R: float32(r/n) / maxChan,
		G: float32(g/n) / maxChan,
		B: float32(b/n) / maxChan,
	}, true
}
