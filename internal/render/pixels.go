package render

import (
	"image/color"

	"lifepaint/internal/grid"
)

// fillBinaryRGBA converts a board into RGBA pixels in buf, one pixel per cell
// in row-major order. buf must hold 4*rows*cols bytes.
func fillBinaryRGBA(buf []byte, v grid.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	rows, cols := v.Rows(), v.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			base := (r*cols + c) * 4
			if v.Alive(r, c) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
