package facetex

import (
	"image"

	m "github.com/Faultbox/headforge/pkg/math"
)

// grade applies contrast then saturation per pixel, in that order.
// Both factors support 1.0 (no-op), >1 (boost) and <1 (flatten or
// desaturate). Channels are clamped to [0, 1] after each pass.
func grade(img *image.NRGBA, contrast, saturation float32) {
	if contrast == 1 && saturation == 1 {
		return
	}
	if contrast <= 0 {
		contrast = 1
	}
	if saturation < 0 {
		saturation = 1
	}

	for i := 0; i < len(img.Pix); i += 4 {
		r := float32(img.Pix[i]) / 255
		g := float32(img.Pix[i+1]) / 255
		b := float32(img.Pix[i+2]) / 255

		r, g, b = gradePixel(r, g, b, contrast, saturation)

		img.Pix[i] = uint8(r*255 + 0.5)
		img.Pix[i+1] = uint8(g*255 + 0.5)
		img.Pix[i+2] = uint8(b*255 + 0.5)
	}
}

// gradePixel transforms one normalized RGB pixel: contrast about
// mid-gray, then saturation about the Rec.601 luminance.
func gradePixel(r, g, b, contrast, saturation float32) (float32, float32, float32) {
	r = m.Clamp((r-0.5)*contrast+0.5, 0, 1)
	g = m.Clamp((g-0.5)*contrast+0.5, 0, 1)
	b = m.Clamp((b-0.5)*contrast+0.5, 0, 1)

	lum := 0.299*r + 0.587*g + 0.114*b
	r = m.Clamp(lum+(r-lum)*saturation, 0, 1)
	g = m.Clamp(lum+(g-lum)*saturation, 0, 1)
	b = m.Clamp(lum+(b-lum)*saturation, 0, 1)
	return r, g, b
}
