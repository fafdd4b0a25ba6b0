package scaler

import "github.com/gogpu/xbrz/internal/pixel"

// specialization is the fixed blend-pattern catalogue for one scale
// factor: which cells of the NxN block each detected geometry touches
// and with what weight. The weights are the published xBRZ 1.8 tables;
// the rounded corner fractions approximate the area a quarter circle of
// the blend color covers in each cell.
//
// Every method mutates a block that has already been filled with the
// center color, so a cell it does not touch keeps that color.
type specialization interface {
	scale() int

	// lineShallow draws a mostly-horizontal (1:2 slope) edge.
	lineShallow(col pixel.Pixel, out *outMatrix)
	// lineSteep draws a mostly-vertical (2:1 slope) edge.
	lineSteep(col pixel.Pixel, out *outMatrix)
	// lineSteepAndShallow draws both when the two directions agree.
	lineSteepAndShallow(col pixel.Pixel, out *outMatrix)
	// lineDiagonal draws a 45 degree edge.
	lineDiagonal(col pixel.Pixel, out *outMatrix)
	// corner rounds off a corner that failed the line-blend gate.
	corner(col pixel.Pixel, out *outMatrix)
}

// specs indexes the catalogue by scale factor; index 0 and 1 are unused.
var specs = [7]specialization{2: scale2x{}, 3: scale3x{}, 4: scale4x{}, 5: scale5x{}, 6: scale6x{}}

type scale2x struct{}

func (scale2x) scale() int { return 2 }

func (scale2x) lineShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 1, 0, col)
	out.mix(3, 4, 1, 1, col)
}

func (scale2x) lineSteep(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 1, col)
	out.mix(3, 4, 1, 1, col)
}

func (scale2x) lineSteepAndShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 1, 0, col)
	out.mix(1, 4, 0, 1, col)
	out.mix(5, 6, 1, 1, col)
}

func (scale2x) lineDiagonal(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 2, 1, 1, col)
}

func (scale2x) corner(col pixel.Pixel, out *outMatrix) {
	out.mix(21, 100, 1, 1, col) // exact: 0.2122
}

type scale3x struct{}

func (scale3x) scale() int { return 3 }

func (scale3x) lineShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 2, 0, col)
	out.mix(1, 4, 1, 2, col)
	out.mix(3, 4, 2, 1, col)
	out.set(2, 2, col)
}

func (scale3x) lineSteep(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 2, col)
	out.mix(1, 4, 2, 1, col)
	out.mix(3, 4, 1, 2, col)
	out.set(2, 2, col)
}

func (scale3x) lineSteepAndShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 2, 0, col)
	out.mix(1, 4, 0, 2, col)
	out.mix(3, 4, 2, 1, col)
	out.mix(3, 4, 1, 2, col)
	out.set(2, 2, col)
}

func (scale3x) lineDiagonal(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 8, 1, 2, col)
	out.mix(1, 8, 2, 1, col)
	out.mix(7, 8, 2, 2, col)
}

func (scale3x) corner(col pixel.Pixel, out *outMatrix) {
	// The two off-corner contributions (~0.028) are dropped to avoid
	// conflicts with other rotations at this odd scale.
	out.mix(45, 100, 2, 2, col) // exact: 0.4546
}

type scale4x struct{}

func (scale4x) scale() int { return 4 }

func (scale4x) lineShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 3, 0, col)
	out.mix(1, 4, 2, 2, col)
	out.mix(3, 4, 3, 1, col)
	out.mix(3, 4, 2, 3, col)
	out.set(3, 2, col)
	out.set(3, 3, col)
}

func (scale4x) lineSteep(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 3, col)
	out.mix(1, 4, 2, 2, col)
	out.mix(3, 4, 1, 3, col)
	out.mix(3, 4, 3, 2, col)
	out.set(2, 3, col)
	out.set(3, 3, col)
}

func (scale4x) lineSteepAndShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(3, 4, 3, 1, col)
	out.mix(3, 4, 1, 3, col)
	out.mix(1, 4, 3, 0, col)
	out.mix(1, 4, 0, 3, col)
	out.mix(1, 3, 2, 2, col) // 1/3 corrects the 1/4 used by plain xBR
	out.set(3, 3, col)
	out.set(3, 2, col)
	out.set(2, 3, col)
}

func (scale4x) lineDiagonal(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 2, 3, 2, col)
	out.mix(1, 2, 2, 3, col)
	out.set(3, 3, col)
}

func (scale4x) corner(col pixel.Pixel, out *outMatrix) {
	out.mix(68, 100, 3, 3, col) // exact: 0.6849
	out.mix(9, 100, 3, 2, col)  // 0.0868
	out.mix(9, 100, 2, 3, col)
}

type scale5x struct{}

func (scale5x) scale() int { return 5 }

func (scale5x) lineShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 4, 0, col)
	out.mix(1, 4, 3, 2, col)
	out.mix(1, 4, 2, 4, col)
	out.mix(3, 4, 4, 1, col)
	out.mix(3, 4, 3, 3, col)
	out.set(4, 2, col)
	out.set(4, 3, col)
	out.set(4, 4, col)
	out.set(3, 4, col)
}

func (scale5x) lineSteep(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 4, col)
	out.mix(1, 4, 2, 3, col)
	out.mix(1, 4, 4, 2, col)
	out.mix(3, 4, 1, 4, col)
	out.mix(3, 4, 3, 3, col)
	out.set(2, 4, col)
	out.set(3, 4, col)
	out.set(4, 4, col)
	out.set(4, 3, col)
}

func (scale5x) lineSteepAndShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 4, col)
	out.mix(1, 4, 2, 3, col)
	out.mix(3, 4, 1, 4, col)
	out.mix(1, 4, 4, 0, col)
	out.mix(1, 4, 3, 2, col)
	out.mix(3, 4, 4, 1, col)
	out.mix(2, 3, 3, 3, col)
	out.set(2, 4, col)
	out.set(3, 4, col)
	out.set(4, 4, col)
	out.set(4, 2, col)
	out.set(4, 3, col)
}

func (scale5x) lineDiagonal(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 8, 4, 2, col)
	out.mix(1, 8, 3, 3, col)
	out.mix(1, 8, 2, 4, col)
	out.mix(7, 8, 4, 3, col)
	out.mix(7, 8, 3, 4, col)
	out.set(4, 4, col)
}

func (scale5x) corner(col pixel.Pixel, out *outMatrix) {
	// The ~0.017 contributions two cells out are dropped to avoid
	// conflicts with other rotations at this odd scale.
	out.mix(86, 100, 4, 4, col) // exact: 0.8631
	out.mix(23, 100, 4, 3, col) // 0.2307
	out.mix(23, 100, 3, 4, col)
}

type scale6x struct{}

func (scale6x) scale() int { return 6 }

func (scale6x) lineShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 5, 0, col)
	out.mix(1, 4, 4, 2, col)
	out.mix(1, 4, 3, 4, col)
	out.mix(3, 4, 5, 1, col)
	out.mix(3, 4, 4, 3, col)
	out.mix(3, 4, 3, 5, col)
	out.set(5, 2, col)
	out.set(5, 3, col)
	out.set(5, 4, col)
	out.set(5, 5, col)
	out.set(4, 4, col)
	out.set(4, 5, col)
}

func (scale6x) lineSteep(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 5, col)
	out.mix(1, 4, 2, 4, col)
	out.mix(1, 4, 4, 3, col)
	out.mix(3, 4, 1, 5, col)
	out.mix(3, 4, 3, 4, col)
	out.mix(3, 4, 5, 3, col)
	out.set(2, 5, col)
	out.set(3, 5, col)
	out.set(4, 5, col)
	out.set(5, 5, col)
	out.set(4, 4, col)
	out.set(5, 4, col)
}

func (scale6x) lineSteepAndShallow(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 4, 0, 5, col)
	out.mix(1, 4, 2, 4, col)
	out.mix(3, 4, 1, 5, col)
	out.mix(3, 4, 3, 4, col)
	out.mix(1, 4, 5, 0, col)
	out.mix(1, 4, 4, 2, col)
	out.mix(3, 4, 5, 1, col)
	out.mix(3, 4, 4, 3, col)
	out.set(2, 5, col)
	out.set(3, 5, col)
	out.set(4, 5, col)
	out.set(5, 5, col)
	out.set(4, 4, col)
	out.set(5, 4, col)
	out.set(5, 2, col)
	out.set(5, 3, col)
}

func (scale6x) lineDiagonal(col pixel.Pixel, out *outMatrix) {
	out.mix(1, 2, 5, 3, col)
	out.mix(1, 2, 4, 4, col)
	out.mix(1, 2, 3, 5, col)
	out.set(4, 5, col)
	out.set(5, 5, col)
	out.set(5, 4, col)
}

func (scale6x) corner(col pixel.Pixel, out *outMatrix) {
	out.mix(97, 100, 5, 5, col) // exact: 0.9711
	out.mix(42, 100, 4, 5, col) // 0.4236
	out.mix(42, 100, 5, 4, col)
	out.mix(6, 100, 5, 3, col) // 0.0565
	out.mix(6, 100, 3, 5, col)
}
