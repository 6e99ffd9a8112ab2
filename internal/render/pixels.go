package render

import (
	"image/color"

	"stepca/internal/core"
)

// fillBinaryRGBA converts alive/dead cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.State, on, off color.Color) {
	onPx := rgba(on)
	offPx := rgba(off)
	for i, c := range cells {
		px := offPx
		if c == core.Alive {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
