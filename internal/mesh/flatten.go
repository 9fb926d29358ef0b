package mesh

import (
	"fmt"
	"math"

	"obj-wireframe/internal/mathutil"
)

// Flatten returns three positions per triangle, in face order. Polygons with
// more than three corners are split as a fan (0,1,2), (0,2,3), ... so the
// result length is always a multiple of 3.
func Flatten(m Mesh) ([]mathutil.Vec3, error) {
	n := 0
	for _, f := range m.Faces {
		if len(f.Corners) >= 3 {
			n += 3 * (len(f.Corners) - 2)
		}
	}
	out := make([]mathutil.Vec3, 0, n)

	for fi, f := range m.Faces {
		if len(f.Corners) < 3 {
			return nil, fmt.Errorf("mesh: face %d has %d corners", fi, len(f.Corners))
		}
		for _, c := range f.Corners {
			if p := c[0]; p < 0 || p >= len(m.Vertices) {
				return nil, fmt.Errorf("mesh: face %d references vertex %d of %d", fi, p+1, len(m.Vertices))
			}
		}
		for i := 1; i+1 < len(f.Corners); i++ {
			out = append(out,
				m.Vertices[f.Corners[0][0]],
				m.Vertices[f.Corners[i][0]],
				m.Vertices[f.Corners[i+1][0]],
			)
		}
	}
	return out, nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty slice yields +Inf/-Inf bounds.
func Bounds(vs []mathutil.Vec3) (lo, hi mathutil.Vec3) {
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range vs {
		for k := 0; k < 3; k++ {
			if v[k] < lo[k] {
				lo[k] = v[k]
			}
			if v[k] > hi[k] {
				hi[k] = v[k]
			}
		}
	}
	return lo, hi
}
