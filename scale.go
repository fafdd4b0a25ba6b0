package xbrz

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/remeh/sizedwaitgroup"

	"github.com/gogpu/xbrz/internal/colordist"
	"github.com/gogpu/xbrz/internal/scaler"
)

// Common errors for scaling operations.
var (
	// ErrInvalidDimensions is returned when width or height is not
	// positive or the buffer length does not equal width*height*4.
	ErrInvalidDimensions = errors.New("xbrz: invalid dimensions")

	// ErrUnsupportedFactor is returned when the scale factor is
	// outside 2..6.
	ErrUnsupportedFactor = errors.New("xbrz: unsupported scale factor")
)

// minStripeRows keeps stripes from shrinking to the point where the
// per-stripe preprocessing row dominates the work.
const minStripeRows = 8

// Scale upscales a flat RGBA8 image by an integer factor in 2..6.
//
// src holds width*height pixels, 4 bytes each (R,G,B,A), row-major,
// left to right then top to bottom. The result uses the same layout
// with dimensions width*factor by height*factor. src is only read;
// the returned buffer is newly allocated.
//
// All validation happens before any work is dispatched, so a returned
// error means no partial output was produced. The call is deterministic:
// the same input yields byte-identical output on every run and worker
// count.
func Scale(src []byte, width, height, factor int, opts ...Option) ([]byte, error) {
	if factor < scaler.MinFactor || factor > scaler.MaxFactor {
		return nil, fmt.Errorf("%w: %d not in 2..6", ErrUnsupportedFactor, factor)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(src) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidDimensions, width, height, width*height*4, len(src))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg := scaler.Config(o.cfg)

	workers := o.parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Publish the distance table before fanning out; every worker then
	// reads it without synchronization.
	colordist.Init()

	dst := make([]byte, width*factor*height*factor*4)

	stripe := (height + workers - 1) / workers
	if stripe < minStripeRows {
		stripe = minStripeRows
	}
	if stripe >= height {
		workers = 1
	}

	Logger().Debug("xbrz: scaling image",
		"width", width, "height", height, "factor", factor, "workers", workers)

	if workers == 1 {
		scaler.ScaleRows(src, dst, width, height, factor, cfg, 0, height)
		return dst, nil
	}

	// Stripes write disjoint destination rows, so the bounded wait
	// group is the only synchronization needed.
	swg := sizedwaitgroup.New(workers)
	for y := 0; y < height; y += stripe {
		yFirst, yLast := y, y+stripe
		if yLast > height {
			yLast = height
		}
		swg.Add()
		go func() {
			defer swg.Done()
			scaler.ScaleRows(src, dst, width, height, factor, cfg, yFirst, yLast)
		}()
	}
	swg.Wait()

	return dst, nil
}
