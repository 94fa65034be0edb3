package facetex

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// EncodePNG writes the texture as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding texture png: %w", err)
	}
	return nil
}

// EncodeJPEG writes the texture as JPEG with the given quality (1-100;
// out-of-range values use the stock quality).
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		quality = 90
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encoding texture jpeg: %w", err)
	}
	return nil
}

// EncodeBlob returns the texture as an encoded byte blob for transfer
// to a separate process or renderer. format is "png" or "jpeg".
func EncodeBlob(img image.Image, format string, jpegQuality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "jpeg", "jpg":
		if err := EncodeJPEG(&buf, img, jpegQuality); err != nil {
			return nil, err
		}
	case "png", "":
		if err := EncodePNG(&buf, img); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported texture format %q", format)
	}
	return buf.Bytes(), nil
}
