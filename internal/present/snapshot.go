// Package present hands finished frames to a display or to disk.
package present

import (
	"encoding/binary"
	"image"

	"obj-wireframe/internal/parallel"
	"obj-wireframe/internal/raster"
)

// Snapshot copies the buffer into dst, which must have the buffer's size.
// Rows are converted in parallel.
func Snapshot(dst *image.RGBA, buf *raster.PixelBuffer, workers int) {
	w := buf.Width
	parallel.For(buf.Height, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			src := buf.Pix[y*w : (y+1)*w]
			off := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
			row := dst.Pix[off : off+w*4]
			for x, p := range src {
				binary.LittleEndian.PutUint32(row[x*4:], p)
			}
		}
	})
}

// NewSnapshot allocates an image of the buffer's size and fills it.
func NewSnapshot(buf *raster.PixelBuffer, workers int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	Snapshot(img, buf, workers)
	return img
}
