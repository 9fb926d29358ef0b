package raster

import (
	"sync/atomic"

	"obj-wireframe/internal/parallel"
)

// PixelBuffer holds the rendering target as a flat row-major slice for cache locality.
// It is addressed in centered coordinates: logical (0, 0) is cell (Width/2, Height/2).
//
// Cells hold packed colors (see Color.Pack). Plot stores atomically so that
// concurrent triangles may write the same cell without locking; the value
// left behind is whichever store landed last.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32 // len = Width*Height, row 0 at the top
}

// NewPixelBuffer allocates a buffer cleared to opaque black.
func NewPixelBuffer(w, h int) *PixelBuffer {
	pix := make([]uint32, w*h)
	black := Black.Pack()
	for i := range pix {
		pix[i] = black
	}
	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// Offset maps centered coordinates to an index into Pix.
// ok is false when the cell lies outside the grid.
func (b *PixelBuffer) Offset(x, y int) (i int, ok bool) {
	cx := x + b.Width/2
	cy := y + b.Height/2
	if cx < 0 || cx >= b.Width || cy < 0 || cy >= b.Height {
		return 0, false
	}
	return cy*b.Width + cx, true
}

// Clear sets every cell to opaque black, one row range per worker.
func (b *PixelBuffer) Clear(workers int) {
	black := Black.Pack()
	parallel.For(b.Height, workers, func(lo, hi int) {
		row := b.Pix[lo*b.Width : hi*b.Width]
		for i := range row {
			row[i] = black
		}
	})
}

// Plot overwrites the cell at centered (x, y) with white scaled by intensity.
// Out-of-bounds cells are dropped. Writes never blend.
func (b *PixelBuffer) Plot(x, y int, intensity float64) {
	if i, ok := b.Offset(x, y); ok {
		atomic.StoreUint32(&b.Pix[i], White.Scale(intensity).Pack())
	}
}
