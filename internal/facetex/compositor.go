// Package facetex renders the face-surface diffuse texture: the source
// photo clipped to the face oval over a skin-tone background, with an
// optional contrast/saturation grade.
package facetex

import (
	"image"
	stddraw "image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/headforge/internal/landmark"
	"github.com/Faultbox/headforge/internal/skin"
	"github.com/Faultbox/headforge/internal/topology"
	m "github.com/Faultbox/headforge/pkg/math"
)

// Options control texture compositing.
type Options struct {
	// Size is the square output resolution.
	Size int
	// InsetFrac shrinks the clip polygon toward the UV center so hair
	// and background at the oval boundary stay out of the texture.
	InsetFrac float32
	// Contrast and Saturation grade the photo; 1.0 is a no-op.
	Contrast   float32
	Saturation float32
}

// DefaultOptions returns the stock compositing setup: 512px with a
// mild contrast and saturation boost.
func DefaultOptions() Options {
	return Options{
		Size:       512,
		InsetFrac:  0.02,
		Contrast:   1.1,
		Saturation: 1.15,
	}
}

// Compose renders the face texture. The whole canvas is first filled
// with the sampled skin tone so the clip boundary never shows seams,
// then the photo is scaled to the canvas, graded, and drawn clipped to
// the inset face-oval polygon.
func Compose(photo image.Image, set landmark.Set, tone skin.Tone, opts Options) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = DefaultOptions().Size
	}
	rect := image.Rect(0, 0, size, size)

	canvas := image.NewNRGBA(rect)
	fill(canvas, tone)

	if photo == nil || photo.Bounds().Dx() <= 0 || photo.Bounds().Dy() <= 0 {
		return canvas
	}

	poly := ovalPolygon(set, size, opts.InsetFrac)
	mask := rasterizePolygon(poly, size)

	scaled := image.NewNRGBA(rect)
	xdraw.ApproxBiLinear.Scale(scaled, rect, photo, photo.Bounds(), xdraw.Src, nil)
	grade(scaled, opts.Contrast, opts.Saturation)

	stddraw.DrawMask(canvas, rect, scaled, image.Point{}, mask, image.Point{}, stddraw.Over)
	return canvas
}

// fill paints the entire canvas with the tone.
func fill(img *image.NRGBA, tone skin.Tone) {
	r := uint8(m.Clamp(tone.R, 0, 1) * 255)
	g := uint8(m.Clamp(tone.G, 0, 1) * 255)
	b := uint8(m.Clamp(tone.B, 0, 1) * 255)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
}

// ovalPolygon maps the face-oval landmarks to pixel space and insets
// them toward the canvas center.
func ovalPolygon(set landmark.Set, size int, insetFrac float32) []m.Vec2 {
	center := m.Vec2{X: float32(size) / 2, Y: float32(size) / 2}
	scale := 1 - insetFrac

	poly := make([]m.Vec2, len(topology.FaceOval))
	for i, idx := range topology.FaceOval {
		p := set[idx]
		// UV space (u = -x+0.5, v = y+0.5) to raster pixels; raster
		// row 0 is the top so v flips.
		px := (-p.X + 0.5) * float32(size)
		py := (1 - (p.Y + 0.5)) * float32(size)
		poly[i] = center.Add(m.Vec2{X: px, Y: py}.Sub(center).Scale(scale))
	}
	return poly
}

// rasterizePolygon scanline-fills the closed polygon into an alpha
// mask using even-odd intersection pairing.
func rasterizePolygon(poly []m.Vec2, size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	if len(poly) < 3 {
		return mask
	}

	xs := make([]float32, 0, len(poly))
	for y := 0; y < size; y++ {
		cy := float32(y) + 0.5
		xs = xs[:0]

		for i := 0; i < len(poly); i++ {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if (a.Y <= cy) == (b.Y <= cy) {
				continue
			}
			t := (cy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}

		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(xs[i] + 0.5)
			x1 := int(xs[i+1] + 0.5)
			if x0 < 0 {
				x0 = 0
			}
			if x1 > size {
				x1 = size
			}
			row := mask.Pix[y*mask.Stride:]
			for x := x0; x < x1; x++ {
				row[x] = 0xff
			}
		}
	}
	return mask
}

func sortFloats(xs []float32) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
