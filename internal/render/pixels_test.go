package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifepaint/internal/grid"
)

func TestFillBinaryRGBA(t *testing.T) {
	g := grid.Parse(
		"#.",
		".#",
	)
	buf := make([]byte, 4*4)
	on := color.RGBA{R: 250, G: 240, B: 230, A: 255}
	off := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	fillBinaryRGBA(buf, g, on, off)

	want := []byte{
		250, 240, 230, 255, 1, 2, 3, 255,
		1, 2, 3, 255, 250, 240, 230, 255,
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels (-want +got):\n%s", diff)
	}
}

func TestFillBinaryRGBAEmpty(t *testing.T) {
	fillBinaryRGBA(nil, grid.New(0, 5), color.White, color.Black)
}
