package xbrz

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleImage upscales any image.Image by an integer factor in 2..6.
//
// Inputs that are not tightly packed *image.RGBA (palettes, NRGBA,
// sub-images, unusual strides) are first normalized with a straight
// source-copy draw; no resampling happens during normalization, so the
// pixels the scaler sees are exactly the input pixels.
func ScaleImage(img image.Image, factor int, opts ...Option) (*image.RGBA, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != width*4 || len(rgba.Pix) != width*height*4 {
		tmp := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
		rgba = tmp
	}

	dst, err := Scale(rgba.Pix, width, height, factor, opts...)
	if err != nil {
		return nil, err
	}

	return &image.RGBA{
		Pix:    dst,
		Stride: width * factor * 4,
		Rect:   image.Rect(0, 0, width*factor, height*factor),
	}, nil
}
