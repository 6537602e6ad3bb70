package loader

import (
	"fmt"
	"image"
	"os"

	// Register the image formats the catalog may reference.
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	xdraw "golang.org/x/image/draw"
)

// decodeTextureFile reads and decodes an image file into RGBA pixel data.
// Images whose longest side exceeds maxSize are downscaled with Catmull-Rom
// resampling, preserving aspect ratio, so oversized source art cannot blow the
// GPU texture budget.
//
// Parameters:
//   - path: the image file path
//   - name: the identifier recorded on the decoded texture
//   - maxSize: the longest allowed side in pixels; 0 disables downscaling
//
// Returns:
//   - *common.TextureImage: the decoded texture
//   - error: an error if the file cannot be read or decoded
func decodeTextureFile(path, name string, maxSize int) (*common.TextureImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %q: %w", path, err)
	}

	rgba := toNRGBA(src)
	if maxSize > 0 {
		rgba = downscale(rgba, maxSize)
	}

	bounds := rgba.Bounds()
	return &common.TextureImage{
		Name:   name,
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}

// toNRGBA converts any decoded image into a tightly packed NRGBA image with a
// zero origin, which is the 4-bytes-per-pixel layout the GPU upload expects.
func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		b := nrgba.Bounds()
		if b.Min == (image.Point{}) && nrgba.Stride == b.Dx()*4 {
			return nrgba
		}
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, bounds.Min, xdraw.Src)
	return dst
}

// downscale shrinks an image so its longest side is at most maxSize,
// preserving aspect ratio. Images already within the limit are returned
// unchanged.
func downscale(src *image.NRGBA, maxSize int) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longest := max(w, h)
	if longest <= maxSize {
		return src
	}

	scale := float64(maxSize) / float64(longest)
	dw := max(int(float64(w)*scale), 1)
	dh := max(int(float64(h)*scale), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}
