package frame

import (
	"time"

	"obj-wireframe/internal/mathutil"
	"obj-wireframe/internal/parallel"
)

// RotationState is the accumulated rotation owned by a Cycle.
type RotationState struct {
	M    mathutil.Mat3
	Axis mathutil.Vec3 // spin axis for each incremental rotation
}

// NewRotationState starts from initial and spins around axis.
func NewRotationState(initial mathutil.Mat3, axis mathutil.Vec3) *RotationState {
	return &RotationState{M: initial, Axis: axis}
}

// Advance composes an incremental rotation of angle radians onto the state.
// The increment is applied in object space (M = M × R), matching a
// right-multiplied model transform.
func (s *RotationState) Advance(angle float64) {
	s.M = mathutil.Mat3Mul(s.M, mathutil.RotAxis(s.Axis, angle))
}

// rotateVertex is replaced in tests to stall individual workers.
var rotateVertex = func(m mathutil.Mat3, v mathutil.Vec3) mathutil.Vec3 {
	return m.MulVec3(v)
}

// Transform advances the rotation by elapsed*speed and then applies the
// updated accumulated matrix to every vertex in place. Because each frame
// reapplies the full accumulated rotation to already-rotated vertices,
// rounding error compounds over long runs.
func Transform(s *RotationState, verts []mathutil.Vec3, elapsed time.Duration, speed float64, workers int) {
	s.Advance(elapsed.Seconds() * speed)
	m := s.M
	parallel.For(len(verts), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			verts[i] = rotateVertex(m, verts[i])
		}
	})
}
