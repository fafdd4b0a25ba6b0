// Package colordist measures the perceptual distance between two RGBA8
// pixels using a precomputed lookup table.
//
// The distance is a weighted Euclidean norm of the channel differences in
// a luma-chroma (YCbCr, Rec.2020 primaries) representation, which
// penalizes luma differences more than chroma differences the way human
// vision does. Distances are precomputed for every representable
// quantized channel-difference triple and stored in a flat float32 table,
// replacing three multiplies and a square root per call with one array
// lookup.
//
// Two table resolutions exist as a build-time choice. The default build
// quantizes each signed channel difference to 5 bits (32^3 entries,
// 128 KiB). Building with the "xbrzfulllut" tag keeps the full 8-bit
// resolution (256^3 entries, 64 MiB). The addressing scheme differs
// between the two, so the choice is fixed per compiled artifact.
package colordist

import (
	"math"
	"sync"

	"github.com/gogpu/xbrz/internal/pixel"
)

// Rec.2020 RGB -> YCbCr coefficients.
const (
	kB = 0.0593
	kR = 0.2627
	kG = 1.0 - kB - kR

	scaleB = 0.5 / (1.0 - kB)
	scaleR = 0.5 / (1.0 - kR)
)

// distYCbCr computes the reference distance for a signed RGB difference.
// The table construction and the tests share this single definition.
func distYCbCr(rDiff, gDiff, bDiff float64) float64 {
	y := kR*rDiff + kG*gDiff + kB*bDiff
	cB := scaleB * (bDiff - y)
	cR := scaleR * (rDiff - y)
	return math.Sqrt(y*y + cB*cB + cR*cR)
}

var (
	tableOnce sync.Once
	table     []float32
)

// Init builds the distance table if it has not been built yet. Scale
// calls this before dispatching parallel work so that every worker
// observes a fully built table; the sync.Once gives the happens-before
// edge. Calling Dist without Init is also safe, just lazier.
func Init() {
	tableOnce.Do(func() {
		table = buildTable()
	})
}

// diffByte encodes the signed difference of two channel values as the
// two's-complement byte of diff/2. Halving keeps the value in int8 range
// so the whole signed span indexes a table dimension of 256 (or 32 after
// 5-bit quantization).
func diffByte(c1, c2 uint8) uint8 {
	return uint8(int8((int16(c1) - int16(c2)) / 2))
}

// DistRGB returns the perceptual distance between the color channels of
// two pixels, ignoring alpha.
func DistRGB(p1, p2 pixel.Pixel) float64 {
	Init()
	rPart := diffByte(p1.R(), p2.R())
	gPart := diffByte(p1.G(), p2.G())
	bPart := diffByte(p1.B(), p2.B())
	return float64(table[tableIndex(rPart, gPart, bPart)])
}

// Dist returns the perceptual distance between two pixels. A difference
// in alpha is charged at the maximum channel distance, scaled by how much
// the two coverages disagree; the color distance only counts where both
// pixels are actually visible.
func Dist(p1, p2 pixel.Pixel) float64 {
	a1 := float64(p1.A()) / 255.0
	a2 := float64(p2.A()) / 255.0

	d := DistRGB(p1, p2)
	if a1 < a2 {
		return a1*d + 255.0*(a2-a1)
	}
	return a2*d + 255.0*(a1-a2)
}
