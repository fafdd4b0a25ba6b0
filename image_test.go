package xbrz

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// TestScaleImageRGBA checks the fast path for tightly packed RGBA.
func TestScaleImageRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	c := color.RGBA{R: 10, G: 200, B: 50, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	out, err := ScaleImage(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Bounds(); got.Dx() != 12 || got.Dy() != 8 {
		t.Fatalf("bounds = %v, want 12x8", got)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			if out.RGBAAt(x, y) != c {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, out.RGBAAt(x, y), c)
			}
		}
	}
}

// TestScaleImageNormalizes checks that NRGBA input and sub-images go
// through the normalization path and still match scaling the raw
// pixels directly.
func TestScaleImageNormalizes(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			big.SetRGBA(x, y, color.RGBA{R: uint8(40 * x), G: uint8(40 * y), B: 77, A: 255})
		}
	}
	sub := big.SubImage(image.Rect(2, 2, 5, 5)).(*image.RGBA)

	out, err := ScaleImage(sub, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Reference: copy the sub-image into a packed buffer by hand.
	raw := make([]byte, 3*3*4)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := big.RGBAAt(x+2, y+2)
			putPixel(raw, y*3+x, []byte{c.R, c.G, c.B, c.A})
		}
	}
	want, err := Scale(raw, 3, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(out.Pix, want) {
		t.Error("sub-image scaling differs from scaling the packed pixels")
	}
}

// TestScaleImageErrors checks error propagation.
func TestScaleImageErrors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, err := ScaleImage(img, 9); err == nil {
		t.Error("factor 9 accepted")
	}
}
