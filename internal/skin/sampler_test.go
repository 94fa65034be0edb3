package skin

import (
	"image"
	"image/color"
	"testing"

	"github.com/Faultbox/headforge/internal/landmark"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSampleSolidColor(t *testing.T) {
	img := solidImage(64, 64, color.NRGBA{R: 200, G: 150, B: 100, A: 255})
	set := landmark.SyntheticSet(0.5)

	tone := Sample(img, set, DefaultParams())

	const tol = 0.01
	if abs(tone.R-200.0/255) > tol || abs(tone.G-150.0/255) > tol || abs(tone.B-100.0/255) > tol {
		t.Errorf("expected ~(0.784, 0.588, 0.392), got %+v", tone)
	}
}

func TestSampleNilImageFallsBack(t *testing.T) {
	tone := Sample(nil, landmark.SyntheticSet(0.5), DefaultParams())
	if tone != Fallback {
		t.Errorf("expected fallback tone %+v, got %+v", Fallback, tone)
	}
}

func TestSampleZeroImageFallsBack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	set := landmark.SyntheticSet(0.5)

	tone := Sample(img, set, DefaultParams())
	if tone != Fallback {
		t.Errorf("expected fallback tone %+v, got %+v", Fallback, tone)
	}
}

func TestSampleSkipsOutOfBoundsAnchor(t *testing.T) {
	img := solidImage(32, 32, color.NRGBA{R: 50, G: 100, B: 150, A: 255})
	set := landmark.SyntheticSet(0.5)

	// Push one anchor far outside the image; the rest still average.
	params := Params{PatchSize: 8, Anchors: []int{10, 20, 30}}
	set[20].X = 100

	tone := Sample(img, set, params)
	const tol = 0.01
	if abs(tone.R-50.0/255) > tol {
		t.Errorf("expected remaining anchors to average, got %+v", tone)
	}
}

func TestSampleAllAnchorsOutOfBounds(t *testing.T) {
	img := solidImage(16, 16, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	set := landmark.SyntheticSet(0.5)
	for i := range set {
		set[i].X = 100
	}

	tone := Sample(img, set, DefaultParams())
	if tone != Fallback {
		t.Errorf("expected fallback tone, got %+v", tone)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
