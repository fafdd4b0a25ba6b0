package scaler

import "github.com/gogpu/xbrz/internal/pixel"

// outMatrix addresses one NxN destination block under a clockwise
// rotation, so the per-scale blend catalogues only ever describe the
// unrotated bottom-right corner case.
type outMatrix struct {
	dst    []byte
	base   int // pixel index of the block's top-left cell
	stride int // destination width in pixels
	n      int
	rot    int
}

// index maps block coordinates through the rotation into the flat
// destination buffer. One clockwise step sends (row, col) to
// (n-1-col, row); the loop applies the inverse chain.
func (o *outMatrix) index(row, col int) int {
	for r := o.rot; r > 0; r-- {
		row, col = o.n-1-col, row
	}
	return o.base + row*o.stride + col
}

// set overwrites a block cell.
func (o *outMatrix) set(row, col int, p pixel.Pixel) {
	pixel.Store(o.dst, o.index(row, col), p)
}

// mix blends front into a block cell with weight m/n.
func (o *outMatrix) mix(m, n uint32, row, col int, front pixel.Pixel) {
	i := o.index(row, col)
	pixel.Store(o.dst, i, pixel.Gradient(m, n, front, pixel.Load(o.dst, i)))
}
