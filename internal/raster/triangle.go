package raster

import "obj-wireframe/internal/mathutil"

// Triangle draws the edges A→B, B→C and C→A, in that order.
//
// The color argument is accepted so callers can pass a per-triangle color,
// but it has no effect: edges are always white scaled by coverage.
func Triangle(p Plotter, a, b, c mathutil.Vec3, _ Color) {
	Line(p, a, b)
	Line(p, b, c)
	Line(p, c, a)
}
