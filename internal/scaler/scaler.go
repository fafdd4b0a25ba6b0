// Package scaler implements the xBRZ scaling engine: the edge
// classifier over the 4x4 window, the blend resolver with its per-scale
// pattern catalogue, and the row-stripe driver that synthesizes the
// output blocks.
package scaler

import (
	"github.com/gogpu/xbrz/internal/blend"
	"github.com/gogpu/xbrz/internal/colordist"
	"github.com/gogpu/xbrz/internal/kernel"
	"github.com/gogpu/xbrz/internal/pixel"
)

// Config carries the empirically tuned classification thresholds. The
// defaults reproduce the reference algorithm; they are exposed so a
// caller can recalibrate against reference output instead of patching
// constants.
type Config struct {
	// EqualColorTolerance is the perceptual distance under which two
	// colors count as equal.
	EqualColorTolerance float64

	// CenterDirectionBias weights the center pair against the four
	// supporting pairs when comparing the two diagonal gradients.
	CenterDirectionBias float64

	// DominantDirectionThreshold is the factor by which one diagonal
	// gradient must beat the other for the edge to be dominant, which
	// exempts it from adjacent-blend suppression.
	DominantDirectionThreshold float64

	// SteepDirectionThreshold is the factor by which one line
	// direction must beat the other to classify as a shallow or steep
	// slope instead of a plain diagonal.
	SteepDirectionThreshold float64
}

// DefaultConfig returns the reference threshold set.
func DefaultConfig() Config {
	return Config{
		EqualColorTolerance:        30.0,
		CenterDirectionBias:        4.0,
		DominantDirectionThreshold: 3.6,
		SteepDirectionThreshold:    2.2,
	}
}

// MinFactor and MaxFactor bound the supported scale factors.
const (
	MinFactor = 2
	MaxFactor = 6
)

// engine bundles the per-call state shared by one stripe.
type engine struct {
	cfg      Config
	spec     specialization
	src      []byte
	dst      []byte
	width    int
	height   int
	factor   int
	dstWidth int
}

// ScaleRows scales source rows [yFirst, yLast) of a width x height RGBA
// image into dst, which must hold the full scaled image. Stripes write
// disjoint destination rows, so concurrent calls on the same buffers
// are safe as long as their row ranges do not overlap.
//
// Callers must validate width, height, factor and buffer sizes; this is
// the engine, not the public entry point.
func ScaleRows(src, dst []byte, width, height, factor int, cfg Config, yFirst, yLast int) {
	if yFirst < 0 {
		yFirst = 0
	}
	if yLast > height {
		yLast = height
	}
	if yFirst >= yLast {
		return
	}

	colordist.Init()

	e := &engine{
		cfg:      cfg,
		spec:     specs[factor],
		src:      src,
		dst:      dst,
		width:    width,
		height:   height,
		factor:   factor,
		dstWidth: width * factor,
	}
	e.run(yFirst, yLast)
}

// run is the reference processing sequence: corner classifications are
// produced one 2x2 group at a time while sliding the window, and each
// pixel's four corners are assembled across two scan rows in preProc
// before the pixel is synthesized.
func (e *engine) run(yFirst, yLast int) {
	preProc := make([]blend.Info, e.width)

	// Classify the row above the stripe so the first output row sees
	// its top corners. Stripes must not share this state, or two
	// goroutines would race on it.
	{
		r := kernel.NewRowReader(e.src, e.width, e.height, yFirst-1)
		w := r.Init()

		res := e.classifyCorners(&w)
		preProc[0].AddTopLeft(res.k)

		for x := 0; x < e.width; x++ {
			w.Advance(r, x)
			res := e.classifyCorners(&w)
			preProc[x].AddTopRight(res.j)
			if x+1 < e.width {
				preProc[x+1] = 0
				preProc[x+1].AddTopLeft(res.k)
			}
		}
	}

	for y := yFirst; y < yLast; y++ {
		r := kernel.NewRowReader(e.src, e.width, e.height, y)
		w := r.Init()

		// blendY1 accumulates corners for (x, y+1) while the current
		// row is processed.
		var blendY1 blend.Info
		{
			res := e.classifyCorners(&w)
			blendY1.AddTopLeft(res.k)
			preProc[0].AddBottomLeft(res.g)
		}

		for x := 0; x < e.width; x++ {
			w.Advance(r, x)

			// All four corners of (x, y) are known at this point.
			blendXY := preProc[x]
			{
				res := e.classifyCorners(&w)
				blendXY.AddBottomRight(res.f)

				blendY1.AddTopRight(res.j)
				preProc[x] = blendY1

				blendY1 = 0
				blendY1.AddTopLeft(res.k)

				if x+1 < e.width {
					preProc[x+1].AddBottomLeft(res.g)
				}
			}

			base := y*e.factor*e.dstWidth + x*e.factor
			e.fillBlock(base, w.F)

			if blendXY.Any() {
				for rot := 0; rot < 4; rot++ {
					e.blendCorner(w.Grid(rot), base, blendXY, rot)
				}
			}
		}
	}
}

// fillBlock writes the center color to the whole NxN destination block.
func (e *engine) fillBlock(base int, p pixel.Pixel) {
	for dy := 0; dy < e.factor; dy++ {
		row := base + dy*e.dstWidth
		for dx := 0; dx < e.factor; dx++ {
			pixel.Store(e.dst, row+dx, p)
		}
	}
}

// cornerResult rates the four corners of the window's center 2x2 group,
// each pixel's corner facing the group center.
type cornerResult struct {
	f, g, j, k blend.Type
}

// classifyCorners compares the two diagonal gradients across the center
// 2x2 group (F,G,J,K). Each gradient sums four supporting pair
// distances plus the biased center pair; the weaker diagonal is the
// edge direction. Near-ties yield Normal, a clear win past the
// dominance threshold yields Dominant, and exact ties yield no edge at
// all, so blending only triggers on a confident signal.
func (e *engine) classifyCorners(w *kernel.Window) (res cornerResult) {
	if (w.F == w.G && w.J == w.K) || (w.F == w.J && w.G == w.K) {
		return
	}

	dist := colordist.Dist

	jg := dist(w.I, w.F) + dist(w.F, w.C) + dist(w.N, w.K) + dist(w.K, w.H) +
		e.cfg.CenterDirectionBias*dist(w.J, w.G)
	fk := dist(w.E, w.J) + dist(w.J, w.O) + dist(w.B, w.G) + dist(w.G, w.L) +
		e.cfg.CenterDirectionBias*dist(w.F, w.K)

	switch {
	case jg < fk:
		bt := blend.Normal
		if e.cfg.DominantDirectionThreshold*jg < fk {
			bt = blend.Dominant
		}
		if w.F != w.G && w.F != w.J {
			res.f = bt
		}
		if w.K != w.J && w.K != w.G {
			res.k = bt
		}
	case fk < jg:
		bt := blend.Normal
		if e.cfg.DominantDirectionThreshold*fk < jg {
			bt = blend.Dominant
		}
		if w.J != w.F && w.J != w.K {
			res.j = bt
		}
		if w.G != w.F && w.G != w.K {
			res.g = bt
		}
	}
	return
}

// blendCorner resolves and applies the blend pattern for one corner of
// the current pixel. The grid and the signature are both rotated so the
// corner under consideration is always the bottom-right one.
func (e *engine) blendCorner(g kernel.Grid3, base int, info blend.Info, rot int) {
	b := info.Rotate(rot)
	if b.BottomRight() == blend.None {
		return
	}

	dist := colordist.Dist
	eq := func(p, q pixel.Pixel) bool {
		return dist(p, q) < e.cfg.EqualColorTolerance
	}

	doLineBlend := true
	if b.BottomRight() != blend.Dominant {
		// Suppress a second blending in an adjacent rotation of this
		// pixel (insular pixels, noisy dithering), but keep double
		// blending for 90 degree corners.
		if b.TopRight() != blend.None && !eq(g.E, g.G) {
			doLineBlend = false
		}
		if b.BottomLeft() != blend.None && !eq(g.E, g.C) {
			doLineBlend = false
		}

		// An L-shape around the corner gets the rounded corner only;
		// a full line blend would wipe the stem of the L.
		if doLineBlend &&
			!eq(g.E, g.I) && eq(g.G, g.H) && eq(g.H, g.I) && eq(g.I, g.F) && eq(g.F, g.C) {
			doLineBlend = false
		}
	}

	// Blend with the more similar of the east and south neighbors.
	px := g.F
	if dist(g.E, g.F) > dist(g.E, g.H) {
		px = g.H
	}

	out := &outMatrix{dst: e.dst, base: base, stride: e.dstWidth, n: e.factor, rot: rot}

	if !doLineBlend {
		e.spec.corner(px, out)
		return
	}

	fg := dist(g.F, g.G)
	hc := dist(g.H, g.C)

	shallow := e.cfg.SteepDirectionThreshold*fg <= hc && !eq(g.E, g.G) && !eq(g.D, g.G)
	steep := e.cfg.SteepDirectionThreshold*hc <= fg && !eq(g.E, g.C) && !eq(g.B, g.C)

	switch {
	case shallow && steep:
		e.spec.lineSteepAndShallow(px, out)
	case shallow:
		e.spec.lineShallow(px, out)
	case steep:
		e.spec.lineSteep(px, out)
	default:
		e.spec.lineDiagonal(px, out)
	}
}
