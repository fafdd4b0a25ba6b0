// Package kernel provides the sliding 4x4 source-pixel window consumed
// by the edge classifier.
//
// The window covers source columns x-1..x+2 and rows y-1..y+2 around the
// pixel (x, y) currently being scaled:
//
//	A B C D
//	E F G H
//	I J K L
//	M N O P
//
// F is the center pixel and F,G,J,K form the 2x2 group whose corners the
// classifier rates. Positions outside the image are resolved by clamping
// each axis independently to the nearest in-bounds pixel, so the window
// is total over every (x, y) and scaling a 1x1 image sees sixteen copies
// of its only pixel.
package kernel

import "github.com/gogpu/xbrz/internal/pixel"

// Window is the 4x4 neighborhood of the current source pixel.
type Window struct {
	A, B, C, D pixel.Pixel
	E, F, G, H pixel.Pixel
	I, J, K, L pixel.Pixel
	M, N, O, P pixel.Pixel
}

// RowReader reads columns of four vertically adjacent source pixels for
// one scan row, with both axes clamped to the image bounds.
type RowReader struct {
	src   []byte
	width int
	rows  [4]int // base pixel index of rows y-1, y, y+1, y+2
}

// NewRowReader prepares clamped row access for scan row y.
func NewRowReader(src []byte, width, height, y int) *RowReader {
	row := func(r int) int {
		if r < 0 {
			r = 0
		} else if r >= height {
			r = height - 1
		}
		return r * width
	}
	return &RowReader{
		src:   src,
		width: width,
		rows:  [4]int{row(y - 1), row(y), row(y + 1), row(y + 2)},
	}
}

// fillRight loads source column x+2 (clamped) into the window's right
// edge D, H, L, P.
func (r *RowReader) fillRight(w *Window, x int) {
	col := x + 2
	if col < 0 {
		col = 0
	} else if col >= r.width {
		col = r.width - 1
	}
	w.D = pixel.Load(r.src, r.rows[0]+col)
	w.H = pixel.Load(r.src, r.rows[1]+col)
	w.L = pixel.Load(r.src, r.rows[2]+col)
	w.P = pixel.Load(r.src, r.rows[3]+col)
}

// Init returns the window positioned just left of column 0, ready for
// the first Advance of the row. Each warm-up load lands in the right
// edge and is shifted across, exactly like the steady-state slide.
func (r *RowReader) Init() Window {
	var w Window
	r.fillRight(&w, -4)
	w.A, w.E, w.I, w.M = w.D, w.H, w.L, w.P
	r.fillRight(&w, -3)
	w.B, w.F, w.J, w.N = w.D, w.H, w.L, w.P
	r.fillRight(&w, -2)
	w.C, w.G, w.K, w.O = w.D, w.H, w.L, w.P
	r.fillRight(&w, -1)
	return w
}

// Advance slides the window one pixel right so that F becomes the pixel
// at column x, loading the incoming right edge through r.
func (w *Window) Advance(r *RowReader, x int) {
	w.A, w.E, w.I, w.M = w.B, w.F, w.J, w.N
	w.B, w.F, w.J, w.N = w.C, w.G, w.K, w.O
	w.C, w.G, w.K, w.O = w.D, w.H, w.L, w.P
	r.fillRight(w, x)
}

// Grid3 is the 3x3 neighborhood around the center pixel:
//
//	A B C
//	D E F
//	G H I
//
// E is the center. The blend resolver only ever works on this view.
type Grid3 struct {
	A, B, C pixel.Pixel
	D, E, F pixel.Pixel
	G, H, I pixel.Pixel
}

// Grid extracts the top-left 3x3 of the window rotated by rot clockwise
// 90 degree steps. The blend resolver handles the four corners of a
// pixel by running the same unrotated rule set against each rotation.
func (w *Window) Grid(rot int) Grid3 {
	switch rot & 0x3 {
	case 1:
		return Grid3{w.I, w.E, w.A, w.J, w.F, w.B, w.K, w.G, w.C}
	case 2:
		return Grid3{w.K, w.J, w.I, w.G, w.F, w.E, w.C, w.B, w.A}
	case 3:
		return Grid3{w.C, w.G, w.K, w.B, w.F, w.J, w.A, w.E, w.I}
	default:
		return Grid3{w.A, w.B, w.C, w.E, w.F, w.G, w.I, w.J, w.K}
	}
}
