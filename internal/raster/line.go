package raster

import (
	"math"

	"obj-wireframe/internal/mathutil"
)

// Plotter receives intensity-weighted point writes in centered integer coordinates.
// PixelBuffer is the production implementation.
type Plotter interface {
	Plot(x, y int, intensity float64)
}

func fpart(x float64) float64 {
	return x - math.Floor(x)
}

func rfpart(x float64) float64 {
	return 1 - fpart(x)
}

// transposer emits plots in buffer space for a line that was rasterized with
// its axes swapped.
type transposer struct {
	p     Plotter
	steep bool
}

func (t transposer) plot(x, y int, c float64) {
	if t.steep {
		t.p.Plot(y, x, c)
		return
	}
	t.p.Plot(x, y, c)
}

// Line draws an anti-aliased segment from a to b using Xiaolin Wu's algorithm.
// Only the x and y components are used.
//
// Each end column gets two plots weighted by the x-gap (rfpart for the first
// end, fpart for the second). The sweep between them runs to xpxl2-1
// exclusive, so the column just before the second end is never plotted.
// A segment whose x extent is zero at two decimals uses gradient 1.
func Line(p Plotter, a, b mathutil.Vec3) {
	x1, y1 := a.X(), a.Y()
	x2, y2 := b.X(), b.Y()

	steep := math.Abs(y2-y1) > math.Abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := y2 - y1
	gradient := 1.0
	if math.Floor(x2*100) != math.Floor(x1*100) {
		gradient = dy / dx
	}

	t := transposer{p: p, steep: steep}

	// First endpoint
	xend := math.Round(x1)
	yend := y1 + gradient*(xend-x1)
	xgap := rfpart(x1 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	t.plot(xpxl1, ypxl1, rfpart(yend)*xgap)
	t.plot(xpxl1, ypxl1+1, fpart(yend)*xgap)

	intery := yend + gradient

	// Second endpoint
	xend = math.Round(x2)
	yend = y2 + gradient*(xend-x2)
	xgap = fpart(x2 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	t.plot(xpxl2, ypxl2, rfpart(yend)*xgap)
	t.plot(xpxl2, ypxl2+1, fpart(yend)*xgap)

	// Main sweep
	for x := xpxl1 + 1; x < xpxl2-1; x++ {
		y := int(math.Floor(intery))
		t.plot(x, y, rfpart(intery))
		t.plot(x, y+1, fpart(intery))
		intery += gradient
	}
}
