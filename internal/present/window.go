//go:build cgo

package present

import (
	"context"
	"errors"
	"image"
	"time"

	"obj-wireframe/internal/frame"
	"obj-wireframe/internal/raster"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window and drives c from ebiten's update loop,
// one frame per tick. The window title shows the frame rate. It blocks
// until the window closes or ctx is cancelled.
func RunWindow(ctx context.Context, c *frame.Cycle, title string) error {
	g := &windowGame{
		ctx:   ctx,
		cycle: c,
		title: title,
		rgba:  image.NewRGBA(image.Rect(0, 0, c.Buffer.Width, c.Buffer.Height)),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(c.Buffer.Width, c.Buffer.Height)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type windowGame struct {
	ctx   context.Context
	cycle *frame.Cycle
	title string
	rgba  *image.RGBA
	img   *ebiten.Image
	last  time.Time
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	start := time.Now()
	if _, err := g.cycle.Step(g.ctx, elapsed, g); err != nil {
		if errors.Is(err, frame.ErrStop) {
			return ebiten.Termination
		}
		return err
	}
	if ft := time.Since(start); ft > 0 {
		ebiten.SetWindowTitle(g.title + " - " + FormatFPS(1/ft.Seconds()))
	}
	return nil
}

// Present implements frame.Presenter by staging the buffer for Draw.
func (g *windowGame) Present(_ context.Context, buf *raster.PixelBuffer) error {
	Snapshot(g.rgba, buf, g.cycle.Workers)
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		b := g.rgba.Bounds()
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cycle.Buffer.Width, g.cycle.Buffer.Height
}
