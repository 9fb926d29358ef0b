package present

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize scales img by factor with Catmull-Rom filtering. Frames are opaque,
// so no alpha premultiplication is needed. A factor of 1 (or a result
// smaller than one pixel) returns img unchanged.
func Resize(img *image.RGBA, factor float64) *image.RGBA {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 || h < 1 {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
