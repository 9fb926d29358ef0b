package raster

// Color is one RGBA pixel of the buffer.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// Scale multiplies the color channels by f, clamped to [0, 255] and
// truncated. Alpha is left unchanged.
func (c Color) Scale(f float64) Color {
	return Color{
		R: scale8(c.R, f),
		G: scale8(c.G, f),
		B: scale8(c.B, f),
		A: c.A,
	}
}

func scale8(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}

// Pack stores the color as 0xAABBGGRR, i.e. R,G,B,A in little-endian byte order.
func (c Color) Pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// Unpack is the inverse of Pack.
func Unpack(p uint32) Color {
	return Color{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: uint8(p >> 24)}
}
