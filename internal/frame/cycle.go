// Package frame runs the per-frame cycle: clear, transform, rasterize, present.
//
// Each phase fans out over worker goroutines and ends with a join, so no
// phase ever observes a partially cleared buffer or a partially transformed
// vertex array. During Rasterize triangles plot into the shared buffer
// without locks; when two triangles write the same cell in one frame the
// surviving value is whichever write landed last.
package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"obj-wireframe/internal/mathutil"
	"obj-wireframe/internal/parallel"
	"obj-wireframe/internal/raster"
)

// ErrStop is returned by a Presenter to end Run after the current frame.
var ErrStop = errors.New("frame: stop")

// Presenter consumes the fully rasterized buffer once per frame. The buffer
// is reused for the next frame as soon as Present returns, so implementations
// must copy whatever they keep.
type Presenter interface {
	Present(ctx context.Context, buf *raster.PixelBuffer) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, buf *raster.PixelBuffer) error

func (f PresenterFunc) Present(ctx context.Context, buf *raster.PixelBuffer) error {
	return f(ctx, buf)
}

// drawTriangle is replaced in tests to observe the vertices each triangle reads.
var drawTriangle = raster.Triangle

// Cycle owns the mutable frame state: the buffer, the flattened triangle
// vertices and the accumulated rotation.
type Cycle struct {
	Buffer   *raster.PixelBuffer
	Vertices []mathutil.Vec3 // len is a multiple of 3
	Rotation *RotationState
	Speed    float64 // radians per second of elapsed time
	Workers  int
	Color    raster.Color // passed through to Triangle; has no visual effect

	// Now defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger

	frames int
}

// Stats summarizes one completed frame.
type Stats struct {
	Frame     int
	Elapsed   time.Duration
	Clear     time.Duration
	Transform time.Duration
	Rasterize time.Duration
	Present   time.Duration
}

func (c *Cycle) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Frames returns the number of frames completed so far.
func (c *Cycle) Frames() int { return c.frames }

// Step renders one frame using elapsed as the time since the previous frame.
// The phases run strictly in sequence; p may be nil to skip presentation.
func (c *Cycle) Step(ctx context.Context, elapsed time.Duration, p Presenter) (Stats, error) {
	st := Stats{Frame: c.frames, Elapsed: elapsed}

	t0 := time.Now()
	c.Buffer.Clear(c.Workers)
	t1 := time.Now()
	Transform(c.Rotation, c.Vertices, elapsed, c.Speed, c.Workers)
	t2 := time.Now()
	c.rasterize()
	t3 := time.Now()

	st.Clear, st.Transform, st.Rasterize = t1.Sub(t0), t2.Sub(t1), t3.Sub(t2)

	var err error
	if p != nil {
		err = p.Present(ctx, c.Buffer)
	}
	st.Present = time.Since(t3)
	c.frames++
	if err != nil {
		return st, err
	}

	c.logger().Debug("frame",
		"n", st.Frame,
		"elapsed", st.Elapsed,
		"clear", st.Clear,
		"transform", st.Transform,
		"rasterize", st.Rasterize,
		"present", st.Present,
	)
	return st, nil
}

func (c *Cycle) rasterize() {
	verts := c.Vertices
	buf := c.Buffer
	col := c.Color
	parallel.Each(len(verts)/3, c.Workers, func(t int) {
		i := t * 3
		drawTriangle(buf, verts[i], verts[i+1], verts[i+2], col)
	})
}

// Run renders frames until ctx is cancelled or p returns ErrStop. The
// context is only checked between frames. Elapsed time per frame comes from
// c.Now.
func (c *Cycle) Run(ctx context.Context, p Presenter) error {
	now := c.Now
	if now == nil {
		now = time.Now
	}

	last := now()
	for {
		if ctx.Err() != nil {
			c.logger().Info("render loop stopped", "frames", c.frames, "reason", ctx.Err())
			return nil
		}

		cur := now()
		elapsed := cur.Sub(last)
		last = cur

		if _, err := c.Step(ctx, elapsed, p); err != nil {
			if errors.Is(err, ErrStop) {
				c.logger().Info("render loop stopped", "frames", c.frames, "reason", "presenter")
				return nil
			}
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				c.logger().Info("render loop stopped", "frames", c.frames, "reason", err)
				return nil
			}
			return fmt.Errorf("frame: present frame %d: %w", c.frames-1, err)
		}
	}
}
