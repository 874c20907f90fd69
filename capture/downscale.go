package capture

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/nfnt/resize"
)

// downscale re-encodes a JPEG frame at the given width, keeping the aspect
// ratio. Frames already narrow enough pass through untouched.
func downscale(jpegData []byte, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(jpegData))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() <= maxWidth {
		return jpegData, nil
	}
	small := resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
	var out bytes.Buffer
	if err = jpeg.Encode(&out, small, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
