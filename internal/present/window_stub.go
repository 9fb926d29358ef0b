//go:build !cgo

package present

import (
	"context"
	"errors"

	"obj-wireframe/internal/frame"
)

func RunWindow(_ context.Context, _ *frame.Cycle, _ string) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1); use -mode frames")
}
