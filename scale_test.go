package xbrz

import (
	"bytes"
	"errors"
	"testing"
)

var (
	black = []byte{0, 0, 0, 255}
	white = []byte{255, 255, 255, 255}
)

// putPixel writes one RGBA pixel into a flat buffer.
func putPixel(buf []byte, i int, p []byte) {
	copy(buf[i*4:], p)
}

// samePixel compares pixel i of a flat buffer against an RGBA quad.
func samePixel(buf []byte, i int, p []byte) bool {
	return bytes.Equal(buf[i*4:i*4+4], p)
}

// testPattern builds a deterministic image with flat areas and a
// diagonal edge so that blending actually occurs.
func testPattern(width, height int) []byte {
	buf := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < y {
				putPixel(buf, y*width+x, []byte{200, 40, 40, 255})
			} else {
				putPixel(buf, y*width+x, []byte{30, 60, 180, 255})
			}
		}
	}
	return buf
}

// rot90 rotates a flat RGBA buffer 90 degrees clockwise, returning the
// rotated buffer (dimensions swap).
func rot90(buf []byte, width, height int) []byte {
	out := make([]byte, len(buf))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// (x, y) lands at (height-1-y, x) in the rotated image.
			src := (y*width + x) * 4
			dst := (x*height + (height - 1 - y)) * 4
			copy(out[dst:dst+4], buf[src:src+4])
		}
	}
	return out
}

// TestOutputSize checks the output length contract for every factor.
func TestOutputSize(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 2}, {8, 5}}

	for _, s := range sizes {
		src := testPattern(s.w, s.h)
		for factor := 2; factor <= 6; factor++ {
			dst, err := Scale(src, s.w, s.h, factor)
			if err != nil {
				t.Fatalf("%dx%d x%d: %v", s.w, s.h, factor, err)
			}
			if want := s.w * factor * s.h * factor * 4; len(dst) != want {
				t.Errorf("%dx%d x%d: output %d bytes, want %d",
					s.w, s.h, factor, len(dst), want)
			}
		}
	}
}

// TestValidation checks that malformed calls are rejected up front.
func TestValidation(t *testing.T) {
	src := make([]byte, 2*2*4)

	tests := []struct {
		name    string
		src     []byte
		w, h    int
		factor  int
		wantErr error
	}{
		{"factor too small", src, 2, 2, 1, ErrUnsupportedFactor},
		{"factor too large", src, 2, 2, 7, ErrUnsupportedFactor},
		{"zero width", src, 0, 2, 2, ErrInvalidDimensions},
		{"zero height", src, 2, 0, 2, ErrInvalidDimensions},
		{"negative width", src, -2, 2, 2, ErrInvalidDimensions},
		{"short buffer", src[:8], 2, 2, 2, ErrInvalidDimensions},
		{"long buffer", append(src, 0), 2, 2, 2, ErrInvalidDimensions},
		{"nil buffer", nil, 2, 2, 2, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		dst, err := Scale(tt.src, tt.w, tt.h, tt.factor)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
		if dst != nil {
			t.Errorf("%s: partial output produced", tt.name)
		}
	}
}

// TestUniformColor checks that flat input stays flat at every factor.
func TestUniformColor(t *testing.T) {
	const w, h = 6, 4
	teal := []byte{0, 128, 128, 255}
	src := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		putPixel(src, i, teal)
	}

	for factor := 2; factor <= 6; factor++ {
		dst, err := Scale(src, w, h, factor)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(dst)/4; i++ {
			if !samePixel(dst, i, teal) {
				t.Fatalf("factor %d: pixel %d = %v, want %v",
					factor, i, dst[i*4:i*4+4], teal)
			}
		}
	}
}

// TestSinglePixel checks the degenerate 1x1 input for every factor.
func TestSinglePixel(t *testing.T) {
	src := []byte{12, 34, 56, 78}

	for factor := 2; factor <= 6; factor++ {
		dst, err := Scale(src, 1, 1, factor)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < factor*factor; i++ {
			if !samePixel(dst, i, src) {
				t.Fatalf("factor %d: pixel %d = %v, want %v",
					factor, i, dst[i*4:i*4+4], src)
			}
		}
	}
}

// TestCheckerboard checks the 2x2 checkerboard fixture: the diagonal
// gradients tie exactly, so no blending triggers and x2 scaling must
// reproduce the macro pattern with no new colors. The classification
// rules are rotation-symmetric, so scaling must commute with rotating
// the input.
func TestCheckerboard(t *testing.T) {
	src := make([]byte, 2*2*4)
	putPixel(src, 0, black)
	putPixel(src, 1, white)
	putPixel(src, 2, white)
	putPixel(src, 3, black)

	dst, err := Scale(src, 2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(dst)/4; i++ {
		if !samePixel(dst, i, black) && !samePixel(dst, i, white) {
			t.Fatalf("pixel %d = %v introduced a new color", i, dst[i*4:i*4+4])
		}
	}

	// Each output 2x2 block carries its source pixel's color.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := black
			if (x/2+y/2)%2 == 1 {
				want = white
			}
			if !samePixel(dst, y*4+x, want) {
				t.Fatalf("macro pattern broken at (%d,%d): %v", x, y, dst[(y*4+x)*4:(y*4+x)*4+4])
			}
		}
	}

	scaledRotated, err := Scale(rot90(src, 2, 2), 2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(scaledRotated, rot90(dst, 4, 4)) {
		t.Error("scaling does not commute with 90 degree input rotation")
	}
}

// TestDeterminism checks byte-identical output across repeated runs and
// across serial vs parallel execution.
func TestDeterminism(t *testing.T) {
	const w, h = 23, 17
	src := testPattern(w, h)

	for factor := 2; factor <= 6; factor++ {
		first, err := Scale(src, w, h, factor)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Scale(src, w, h, factor)
		if err != nil {
			t.Fatal(err)
		}
		parallel, err := Scale(src, w, h, factor, WithParallelism(4))
		if err != nil {
			t.Fatal(err)
		}
		maxWorkers, err := Scale(src, w, h, factor, WithParallelism(0))
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(first, second) {
			t.Errorf("factor %d: repeated runs differ", factor)
		}
		if !bytes.Equal(first, parallel) {
			t.Errorf("factor %d: parallel output differs", factor)
		}
		if !bytes.Equal(first, maxWorkers) {
			t.Errorf("factor %d: GOMAXPROCS output differs", factor)
		}
	}
}

// TestWithConfig checks that explicitly passing the default thresholds
// changes nothing, and that custom thresholds are accepted.
func TestWithConfig(t *testing.T) {
	const w, h = 10, 10
	src := testPattern(w, h)

	plain, err := Scale(src, w, h, 3)
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := Scale(src, w, h, 3, WithConfig(DefaultConfig()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plain, explicit) {
		t.Error("explicit default config changed the output")
	}

	cfg := DefaultConfig()
	cfg.EqualColorTolerance = 1000
	loose, err := Scale(src, w, h, 3, WithConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if len(loose) != len(plain) {
		t.Error("custom config broke the size contract")
	}
}
