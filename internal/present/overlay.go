package present

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var overlayColor = color.RGBA{0, 255, 0, 255}

// DrawLabel writes text with its baseline at (x, y) in the 7x13 bitmap face.
func DrawLabel(dst draw.Image, x, y int, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(overlayColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// DrawFPS writes the frame rate in the top-left corner.
func DrawFPS(dst draw.Image, fps float64) {
	b := dst.Bounds()
	DrawLabel(dst, b.Min.X+4, b.Min.Y+basicfont.Face7x13.Ascent+4, FormatFPS(fps))
}

// FormatFPS matches the window title format.
func FormatFPS(fps float64) string {
	return fmt.Sprintf("FPS: %.1f", fps)
}
