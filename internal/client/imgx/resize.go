// Package imgx prepares images for upload: anything wider than the upload
// limit is downscaled and everything is re-encoded as JPEG so the multipart
// file part always carries image/jpeg.
package imgx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// MaxUploadWidth is the widest image the backend accepts without
	// complaint; wider uploads are scaled down preserving aspect ratio.
	MaxUploadWidth = 1024

	// UploadJPEGQuality matches the compression the mobile clients use.
	UploadJPEGQuality = 70
)

// PrepareJPEG decodes src (JPEG, PNG, GIF, BMP, TIFF or WebP), scales it down
// to at most maxWidth pixels wide, and re-encodes it as JPEG. Images already
// within the limit are re-encoded without scaling.
func PrepareJPEG(src []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = MaxUploadWidth
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	if width > maxWidth {
		scale := float64(maxWidth) / float64(width)
		targetWidth := maxWidth
		targetHeight := int(math.Round(float64(height) * scale))
		if targetHeight < 1 {
			targetHeight = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: UploadJPEGQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
