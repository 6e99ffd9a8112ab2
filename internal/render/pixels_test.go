package render

import (
	"image/color"
	"testing"

	"stepca/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []core.State{core.Alive, core.Dead, core.State(7)}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.Black

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		10, 20, 30, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, expected %d (buf=%v)", i, buf[i], want[i], buf)
		}
	}
}
