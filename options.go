package xbrz

// Option configures a scaling call.
// Use functional options to customize Scale behavior.
//
// Example:
//
//	// Default: single goroutine, reference thresholds
//	dst, err := xbrz.Scale(src, w, h, 2)
//
//	// Use every CPU
//	dst, err := xbrz.Scale(src, w, h, 2, xbrz.WithParallelism(0))
type Option func(*scaleOptions)

// scaleOptions holds the optional configuration for one scaling call.
type scaleOptions struct {
	cfg         Config
	parallelism int
}

// defaultOptions returns the default scaling options.
func defaultOptions() scaleOptions {
	return scaleOptions{
		cfg:         DefaultConfig(),
		parallelism: 1,
	}
}

// WithConfig overrides the classifier thresholds for this call.
//
// Example:
//
//	cfg := xbrz.DefaultConfig()
//	cfg.EqualColorTolerance = 45 // merge dithering more aggressively
//	dst, err := xbrz.Scale(src, w, h, 3, xbrz.WithConfig(cfg))
func WithConfig(cfg Config) Option {
	return func(o *scaleOptions) {
		o.cfg = cfg
	}
}

// WithParallelism sets how many goroutines scale row stripes of the
// image. workers == 1 keeps everything on the calling goroutine;
// workers <= 0 uses GOMAXPROCS. Output is byte-identical for any
// worker count.
func WithParallelism(workers int) Option {
	return func(o *scaleOptions) {
		o.parallelism = workers
	}
}
