package xbrz

import "github.com/gogpu/xbrz/internal/scaler"

// Config tunes the edge classifier thresholds. The zero value is not
// meaningful; start from DefaultConfig and adjust.
//
// The defaults are the empirically calibrated constants of the
// reference algorithm. They interact: raising EqualColorTolerance makes
// more neighborhoods look flat (less blending), while lowering
// DominantDirectionThreshold lets weaker edges override the
// tie-break suppression (more blending, more noise on dithered art).
type Config struct {
	// EqualColorTolerance is the perceptual distance below which two
	// colors are treated as the same color.
	EqualColorTolerance float64

	// CenterDirectionBias weights the center pixel pair when the
	// classifier compares the two diagonal gradients of a 2x2 group.
	CenterDirectionBias float64

	// DominantDirectionThreshold is how decisively one diagonal must
	// win before its edge suppresses competing classifications.
	DominantDirectionThreshold float64

	// SteepDirectionThreshold is how lopsided the two line directions
	// must be before an edge counts as a 1:2 or 2:1 slope rather than
	// a plain 45 degree diagonal.
	SteepDirectionThreshold float64
}

// DefaultConfig returns the reference threshold set.
func DefaultConfig() Config {
	return Config(scaler.DefaultConfig())
}
